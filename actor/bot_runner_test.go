package actor

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/cardroom/holdemtable"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestBotRunner_FullSession(t *testing.T) {
	engine := holdemtable.NewTableEngine(
		uint32(logrus.WarnLevel),
		holdemtable.WithRandSource(rand.New(rand.NewSource(42))),
		holdemtable.WithAutoJoinTimeout(1),
	)

	players := []holdemtable.JoinPlayer{
		{PlayerID: "bot-1", RedeemChips: 1000, IsBot: true},
		{PlayerID: "bot-2", RedeemChips: 1000, IsBot: true},
		{PlayerID: "bot-3", RedeemChips: 1000, IsBot: true},
		{PlayerID: "bot-4", RedeemChips: 1000, IsBot: true},
	}

	bots := make([]*BotRunner, 0)
	for i, p := range players {
		bot := NewBotRunner(engine, p.PlayerID)
		bot.SetRandSource(rand.New(rand.NewSource(int64(100 + i))))
		bots = append(bots, bot)
	}

	engine.OnTableUpdated(func(table *holdemtable.Table) {
		for _, bot := range bots {
			bot.UpdateTableState(table)
		}
	})

	table, err := engine.CreateTable(holdemtable.TableSetting{
		Name:        "bots only",
		JoinPlayers: players,
	})
	assert.Nil(t, err, "create table failed")

	// All seats are bots, so every one of them joins from the table-updated
	// callback and the ready group completes without waiting for the timeout.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, holdemtable.TableStateStatus_TableGameStandby, table.State.Status)

	for hand := 0; hand < 10; hand++ {
		expected := int64(0)
		for _, p := range table.State.PlayerStates {
			if p.Bankroll <= 0 {
				expected += holdemtable.DefaultStartingChips
			} else {
				expected += p.Bankroll
			}
		}

		assert.Nil(t, engine.StartHand(), fmt.Sprintf("start hand %d failed", hand+1))

		// Zero action delay makes the bots play the whole hand out
		// synchronously inside the callbacks above.
		assert.Equal(t, holdemtable.TableStateStatus_TableGameSettled, table.State.Status)

		total := int64(0)
		for _, p := range table.State.PlayerStates {
			assert.GreaterOrEqual(t, p.Bankroll, int64(0))
			total += p.Bankroll
		}
		assert.Equal(t, expected, total, fmt.Sprintf("hand %d leaked chips", hand+1))
	}

	assert.Nil(t, engine.CloseTable())
}

func TestBotRunner_JoinsWhenSeatNotConfirmed(t *testing.T) {
	engine := holdemtable.NewTableEngine(
		uint32(logrus.WarnLevel),
		holdemtable.WithAutoJoinTimeout(30),
	)

	players := []holdemtable.JoinPlayer{
		{PlayerID: "human", RedeemChips: 1000},
		{PlayerID: "bot-1", RedeemChips: 1000, IsBot: true},
		{PlayerID: "bot-2", RedeemChips: 1000, IsBot: true},
		{PlayerID: "bot-3", RedeemChips: 1000, IsBot: true},
	}

	bots := make([]*BotRunner, 0)
	for _, p := range players[1:] {
		bots = append(bots, NewBotRunner(engine, p.PlayerID))
	}

	engine.OnTableUpdated(func(table *holdemtable.Table) {
		for _, bot := range bots {
			bot.UpdateTableState(table)
		}
	})

	table, err := engine.CreateTable(holdemtable.TableSetting{
		Name:        "one human",
		JoinPlayers: players,
	})
	assert.Nil(t, err)

	time.Sleep(100 * time.Millisecond)
	for _, p := range table.State.PlayerStates[1:] {
		assert.True(t, p.IsIn, fmt.Sprintf("%s did not auto join", p.PlayerID))
	}
	assert.False(t, table.State.PlayerStates[0].IsIn)

	assert.Nil(t, engine.PlayerJoin("human"))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, holdemtable.TableStateStatus_TableGameStandby, table.State.Status)
}

func TestBotRunner_SetProbabilities(t *testing.T) {
	br := NewBotRunner(nil, "bot")
	br.SetRandSource(rand.New(rand.NewSource(1)))
	br.SetProbabilities([]ActionProbability{{Action: holdemtable.WagerAction_Fold, Weight: 1}}, nil)

	for i := 0; i < 50; i++ {
		assert.Equal(t, holdemtable.WagerAction_Fold, br.calcAction(br.facingWagerProbabilities))
	}
	assert.Equal(t, DefaultUnopenedProbabilities, br.unopenedProbabilities, "nil keeps the default table")
}

func TestBotRunner_ActionWeightsAreNormalized(t *testing.T) {
	br := NewBotRunner(nil, "bot")
	br.SetRandSource(rand.New(rand.NewSource(7)))

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		counts[br.calcAction(DefaultFacingWagerProbabilities)]++
	}

	assert.Greater(t, counts[holdemtable.WagerAction_Call], counts[holdemtable.WagerAction_Raise])
	assert.Greater(t, counts[holdemtable.WagerAction_Call], counts[holdemtable.WagerAction_Fold])
	assert.Equal(t, 1000, counts[holdemtable.WagerAction_Raise]+counts[holdemtable.WagerAction_Call]+counts[holdemtable.WagerAction_Fold])
}
