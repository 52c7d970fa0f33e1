package testcases

import (
	"testing"

	"github.com/cardroom/holdemtable"
	"github.com/stretchr/testify/assert"
)

func logJSON(t *testing.T, msg string, jsonPrinter func() (string, error)) {
	json, _ := jsonPrinter()
	t.Logf("\n===== [%s] =====\n%s\n", msg, json)
}

func FindCurrentPlayerID(table *holdemtable.Table) string {
	gs := table.State.GameState
	if gs == nil || gs.CurrentPlayer == holdemtable.UnsetValue {
		return ""
	}
	return table.State.PlayerStates[gs.CurrentPlayer].PlayerID
}

// AllPlayersCheckDown plays the running hand to settlement, checking when
// possible and calling when facing a wager.
func AllPlayersCheckDown(t *testing.T, tableEngine holdemtable.TableEngine, table *holdemtable.Table) {
	for i := 0; i < 200; i++ {
		gs := table.State.GameState
		if gs == nil || gs.Result != nil {
			return
		}

		playerID := FindCurrentPlayerID(table)
		if gs.Players[gs.CurrentPlayer].Wager < gs.CurrentWager {
			assert.Nil(t, tableEngine.PlayerCall(playerID))
		} else {
			assert.Nil(t, tableEngine.PlayerCheck(playerID))
		}
	}

	t.Fatal("hand did not settle")
}

func TotalBankroll(table *holdemtable.Table) int64 {
	total := int64(0)
	for _, p := range table.State.PlayerStates {
		total += p.Bankroll
	}
	return total
}

func NewBotTableSetting() holdemtable.TableSetting {
	return holdemtable.TableSetting{
		Name: "bots only",
		JoinPlayers: []holdemtable.JoinPlayer{
			{PlayerID: "bot-1", RedeemChips: holdemtable.DefaultStartingChips, IsBot: true},
			{PlayerID: "bot-2", RedeemChips: holdemtable.DefaultStartingChips, IsBot: true},
			{PlayerID: "bot-3", RedeemChips: holdemtable.DefaultStartingChips, IsBot: true},
			{PlayerID: "bot-4", RedeemChips: holdemtable.DefaultStartingChips, IsBot: true},
		},
	}
}
