package holdemtable

// DumpTableStates logs the full table snapshot at debug level. Useful when a
// scripted session goes sideways and the event stream alone is not enough.
func (te *tableEngine) DumpTableStates() {
	if te.table == nil {
		return
	}

	encoded, err := te.table.GetJSON()
	if err != nil {
		te.logger.Warnf("failed to encode table states: %v", err)
		return
	}

	te.logger.Debugf("table states: %s", encoded)
}
