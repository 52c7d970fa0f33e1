package holdemtable

import (
	"time"

	"github.com/sirupsen/logrus"
)

// StartHand opens the next hand: rotates the dealer button, reshuffles the
// deck, deals pockets and hands control to the first player left of the
// dealer. Bot seats that busted on the previous hand re-buy for the default
// stack; a busted human seat ends the session instead.
func (te *tableEngine) StartHand() error {
	te.lock.Lock()

	if te.table == nil {
		te.lock.Unlock()
		return ErrTableOpenGameFailed
	}

	status := te.table.State.Status
	if status != TableStateStatus_TableGameStandby && status != TableStateStatus_TableGameSettled {
		te.lock.Unlock()
		return ErrTableOpenGameFailed
	}

	for _, human := range te.table.HumanPlayers() {
		if human.Bankroll <= 0 {
			te.table.State.Status = TableStateStatus_TableClosed
			te.lock.Unlock()

			te.emitErrorEvent("StartHand", human.PlayerID, ErrTableGameOver)
			te.emitEvent("CloseTable", "")
			return ErrTableGameOver
		}
	}

	for _, player := range te.table.State.PlayerStates {
		if player.IsBot && player.Bankroll <= 0 {
			player.Bankroll = DefaultStartingChips
			te.logger.WithFields(logrus.Fields{
				"table":  te.table.ID,
				"player": player.PlayerID,
			}).Debug("bot re-buys for a fresh stack")
		}
	}

	te.table.State.GameCount++
	te.table.State.CurrentDealerSeat = (te.table.State.CurrentDealerSeat + 1) % te.table.Meta.SeatCount
	if te.table.State.StartAt == UnsetValue {
		te.table.State.StartAt = time.Now().Unix()
	}

	te.deck.Reset()

	setting := GameSetting{
		RaiseIncrement: te.table.Meta.RaiseIncrement,
		DealerIndex:    te.table.State.CurrentDealerSeat,
		Players:        make([]GamePlayerSetting, 0, len(te.table.State.PlayerStates)),
	}
	for _, player := range te.table.State.PlayerStates {
		setting.Players = append(setting.Players, GamePlayerSetting{
			PlayerID: player.PlayerID,
			Bankroll: player.Bankroll,
		})
	}

	g := NewGame(setting, te.deck)
	g.OnGameStateUpdated(func(gs *GameState) {
		te.table.State.GameState = gs
	})
	g.OnGameRoundAdvanced(func(round string, dealt []Card) {
		cards := make([]Card, len(dealt))
		copy(cards, dealt)
		te.deferEmit(func() {
			te.onStreetAdvanced(round)
			te.onCommunityRevealed(cards)
		})

		te.logger.WithFields(logrus.Fields{
			"table": te.table.ID,
			"hand":  te.table.State.GameCount,
			"round": round,
		}).Debug("street advanced")
	})
	g.OnGameClosed(func(result *GameResult) {
		te.settleHand(result)
	})
	te.game = g

	if err := g.Start(); err != nil {
		te.table.State.GameState = nil
		te.game = nil
		te.deferredEvents = nil
		te.lock.Unlock()

		te.emitErrorEvent("StartHand", "", err)
		return ErrTableOpenGameFailed
	}

	for _, p := range g.GetGameState().Players {
		player := te.table.State.PlayerStates[p.Idx]
		for _, card := range p.Pocket {
			playerID, card, faceUp := player.PlayerID, card, !player.IsBot
			te.deferEmit(func() {
				te.onCardDealt(playerID, card, faceUp)
			})
		}
	}

	te.table.State.Status = TableStateStatus_TableGamePlaying
	deferred := te.drainDeferredEvents()
	te.lock.Unlock()

	for _, emit := range deferred {
		emit()
	}
	te.emitEvent("StartHand", "")
	return nil
}

// settleHand copies the finished hand's bankrolls back onto the table and
// queues the showdown render events. Runs with the engine lock held, inside
// the game's close callback.
func (te *tableEngine) settleHand(result *GameResult) {
	for _, pr := range result.Players {
		playerIdx := te.table.FindPlayerIdx(pr.PlayerID)
		if playerIdx == UnsetValue {
			continue
		}
		te.table.State.PlayerStates[playerIdx].Bankroll = pr.Final
	}

	te.table.State.Status = TableStateStatus_TableGameSettled

	// Bots table their pockets when the hand went to a real showdown.
	if !result.WonByFolds {
		for _, p := range te.game.GetGameState().AlivePlayers() {
			playerIdx := te.table.FindPlayerIdx(p.PlayerID)
			if playerIdx == UnsetValue || !te.table.State.PlayerStates[playerIdx].IsBot {
				continue
			}
			playerID := p.PlayerID
			for _, card := range p.Pocket {
				card := card
				te.deferEmit(func() {
					te.onCardDealt(playerID, card, true)
				})
			}
		}
	}

	te.deferEmit(func() {
		te.onHandEnded(result)
	})

	te.logger.WithFields(logrus.Fields{
		"table":    te.table.ID,
		"hand":     te.table.State.GameCount,
		"winners":  result.Winners,
		"pot":      result.Pot,
		"by_folds": result.WonByFolds,
	}).Debug("hand settled")
}
