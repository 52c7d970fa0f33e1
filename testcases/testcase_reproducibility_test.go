package testcases

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/cardroom/holdemtable"
	"github.com/cardroom/holdemtable/actor"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// runSeededSession plays a fixed number of bot hands with every random source
// seeded, returning the full action log and the final bankrolls.
func runSeededSession(t *testing.T, hands int) ([]string, []int64) {
	tableEngine := holdemtable.NewTableEngine(
		uint32(logrus.WarnLevel),
		holdemtable.WithRandSource(rand.New(rand.NewSource(99))),
		holdemtable.WithAutoJoinTimeout(1),
	)

	actionLog := make([]string, 0)
	tableEngine.OnActionTaken(func(playerID string, action string, chips int64) {
		actionLog = append(actionLog, fmt.Sprintf("%s:%s:%d", playerID, action, chips))
	})

	setting := NewBotTableSetting()
	bots := make([]*actor.BotRunner, 0)
	for i, p := range setting.JoinPlayers {
		bot := actor.NewBotRunner(tableEngine, p.PlayerID)
		bot.SetRandSource(rand.New(rand.NewSource(int64(3000 + i))))
		bots = append(bots, bot)
	}

	tableEngine.OnTableUpdated(func(table *holdemtable.Table) {
		for _, bot := range bots {
			bot.UpdateTableState(table)
		}
	})

	table, err := tableEngine.CreateTable(setting)
	assert.Nil(t, err)
	time.Sleep(100 * time.Millisecond)

	for hand := 0; hand < hands; hand++ {
		assert.Nil(t, tableEngine.StartHand())
	}

	bankrolls := make([]int64, 0)
	for _, p := range table.State.PlayerStates {
		bankrolls = append(bankrolls, p.Bankroll)
	}

	return actionLog, bankrolls
}

func TestSeededSessionIsReproducible(t *testing.T) {
	firstLog, firstBankrolls := runSeededSession(t, 10)
	secondLog, secondBankrolls := runSeededSession(t, 10)

	assert.Greater(t, len(firstLog), 0)
	assert.Equal(t, firstLog, secondLog, "same seeds must replay the same actions")
	assert.Equal(t, firstBankrolls, secondBankrolls)
}
