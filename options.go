package holdemtable

import (
	"math/rand"
)

type TableEngineOpt func(*tableEngine)

// WithRandSource replaces the engine's randomness for shuffling. A fixed seed
// makes deck ordering reproducible.
func WithRandSource(r *rand.Rand) TableEngineOpt {
	return func(te *tableEngine) {
		te.r = r
	}
}

// WithRaiseIncrement overrides the fixed raise size.
func WithRaiseIncrement(chips int64) TableEngineOpt {
	return func(te *tableEngine) {
		if chips > 0 {
			te.raiseIncrement = chips
		}
	}
}

// WithAutoJoinTimeout sets how long seat confirmation waits before absent
// players are sat down automatically.
func WithAutoJoinTimeout(seconds int) TableEngineOpt {
	return func(te *tableEngine) {
		te.autoJoinTimeout = seconds
	}
}

// TableEngineCallbacks hold the render-facing event sinks. All of them are
// fire-and-forget; the engine never consults a return value.
type TableEngineCallbacks struct {
	OnTableUpdated      func(*Table)
	OnTableErrorUpdated func(*Table, error)
	OnCardDealt         func(playerID string, card Card, faceUp bool)
	OnCommunityRevealed func(cards []Card)
	OnActionTaken       func(playerID string, action string, chips int64)
	OnStreetAdvanced    func(round string)
	OnHandEnded         func(result *GameResult)
}

func NewTableEngineCallbacks() *TableEngineCallbacks {
	return &TableEngineCallbacks{
		OnTableUpdated:      func(*Table) {},
		OnTableErrorUpdated: func(*Table, error) {},
		OnCardDealt:         func(string, Card, bool) {},
		OnCommunityRevealed: func([]Card) {},
		OnActionTaken:       func(string, string, int64) {},
		OnStreetAdvanced:    func(string) {},
		OnHandEnded:         func(*GameResult) {},
	}
}
