package holdemtable

import (
	"github.com/sirupsen/logrus"
)

// emitEvent refreshes the table serial and notifies the table-updated
// listener. Callers must not hold the engine lock: actors are allowed to
// submit their next move from inside the callback.
func (te *tableEngine) emitEvent(eventName string, playerID string) {
	te.table.RefreshUpdateAt()

	te.logger.WithFields(logrus.Fields{
		"table":  te.table.ID,
		"serial": te.table.UpdateSerial,
		"hand":   te.table.State.GameCount,
		"player": playerID,
	}).Debugf("emit event: %s", eventName)

	te.onTableUpdated(te.table)
}

func (te *tableEngine) emitErrorEvent(eventName string, playerID string, err error) {
	te.logger.WithFields(logrus.Fields{
		"table":  te.table.ID,
		"player": playerID,
	}).Warnf("emit error event: %s: %v", eventName, err)

	te.onTableErrorUpdated(te.table, err)
}

// deferEmit queues a render event produced while the engine lock is held.
// The public method that triggered it flushes the queue, in order, after
// releasing the lock.
func (te *tableEngine) deferEmit(fn func()) {
	te.deferredEvents = append(te.deferredEvents, fn)
}

func (te *tableEngine) drainDeferredEvents() []func() {
	deferred := te.deferredEvents
	te.deferredEvents = nil
	return deferred
}
