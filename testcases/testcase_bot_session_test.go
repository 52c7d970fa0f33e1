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

func TestBotSession_TwentyHands(t *testing.T) {
	tableEngine := holdemtable.NewTableEngine(
		uint32(logrus.WarnLevel),
		holdemtable.WithRandSource(rand.New(rand.NewSource(20))),
		holdemtable.WithAutoJoinTimeout(1),
	)

	setting := NewBotTableSetting()
	bots := make([]*actor.BotRunner, 0)
	for i, p := range setting.JoinPlayers {
		bot := actor.NewBotRunner(tableEngine, p.PlayerID)
		bot.SetRandSource(rand.New(rand.NewSource(int64(1000 + i))))
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

	for hand := 1; hand <= 20; hand++ {
		expected := int64(0)
		for _, p := range table.State.PlayerStates {
			if p.Bankroll <= 0 {
				expected += holdemtable.DefaultStartingChips
			} else {
				expected += p.Bankroll
			}
		}

		assert.Nil(t, tableEngine.StartHand(), fmt.Sprintf("hand %d failed to open", hand))
		assert.Equal(t, holdemtable.TableStateStatus_TableGameSettled, table.State.Status,
			fmt.Sprintf("hand %d did not settle", hand))
		assert.Equal(t, expected, TotalBankroll(table), fmt.Sprintf("hand %d leaked chips", hand))

		gs := table.State.GameState
		assert.NotNil(t, gs.Result)
		assert.Greater(t, len(gs.Result.Winners), 0)
	}

	assert.Equal(t, 20, table.State.GameCount)
	assert.Nil(t, tableEngine.CloseTable())
}

func TestBotSession_StatisticsAccumulate(t *testing.T) {
	tableEngine := holdemtable.NewTableEngine(
		uint32(logrus.WarnLevel),
		holdemtable.WithRandSource(rand.New(rand.NewSource(21))),
		holdemtable.WithAutoJoinTimeout(1),
	)

	setting := NewBotTableSetting()
	bots := make([]*actor.BotRunner, 0)
	for i, p := range setting.JoinPlayers {
		bot := actor.NewBotRunner(tableEngine, p.PlayerID)
		bot.SetRandSource(rand.New(rand.NewSource(int64(2000 + i))))
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

	for hand := 0; hand < 5; hand++ {
		assert.Nil(t, tableEngine.StartHand())
	}

	actions := 0
	for _, p := range table.State.PlayerStates {
		actions += p.GameStatistics.ActionTimes
	}
	assert.Greater(t, actions, 0, "five hands of play record at least some actions")
	assert.NotNil(t, table.State.LastGameAction)
}
