package holdemtable

import (
	"github.com/thoas/go-funk"
)

// GameState is the complete state of one hand. The table engine shares it
// with downstream consumers; only the game mutates it.
type GameState struct {
	GameID        string             `json:"game_id"`
	Round         string             `json:"round"`
	DealerIndex   int                `json:"dealer_index"`
	CurrentPlayer int                `json:"current_player"`
	CurrentWager  int64              `json:"current_wager"`
	Pot           int64              `json:"pot"`
	Board         []Card             `json:"board"`
	Players       []*GamePlayerState `json:"players"`
	Result        *GameResult        `json:"result,omitempty"`
	UpdatedAt     int64              `json:"updated_at"`
}

type GamePlayerState struct {
	Idx      int    `json:"idx"`
	PlayerID string `json:"player_id"`
	Bankroll int64  `json:"bankroll"`
	Wager    int64  `json:"wager"`
	Pocket   []Card `json:"pocket"`
	Fold     bool   `json:"fold"`
	Acted    bool   `json:"acted"`
	AllIn    bool   `json:"all_in"`
}

// GameResult is produced exactly once, when the hand reaches showdown.
type GameResult struct {
	Winners    []int               `json:"winners"`
	Pot        int64               `json:"pot"`
	WonByFolds bool                `json:"won_by_folds"`
	Players    []*GamePlayerResult `json:"players"`
}

type GamePlayerResult struct {
	Idx      int    `json:"idx"`
	PlayerID string `json:"player_id"`
	Score    int    `json:"score"`
	Awarded  int64  `json:"awarded"`
	Final    int64  `json:"final"`
}

func (gs *GameState) GetPlayer(playerIdx int) *GamePlayerState {
	if playerIdx < 0 || playerIdx >= len(gs.Players) {
		return nil
	}
	return gs.Players[playerIdx]
}

// AlivePlayers returns all players still contesting the pot.
func (gs *GameState) AlivePlayers() []*GamePlayerState {
	return funk.Filter(gs.Players, func(p *GamePlayerState) bool {
		return !p.Fold
	}).([]*GamePlayerState)
}

// ActablePlayers returns all players who may still wager this street.
func (gs *GameState) ActablePlayers() []*GamePlayerState {
	return funk.Filter(gs.Players, func(p *GamePlayerState) bool {
		return !p.Fold && !p.AllIn
	}).([]*GamePlayerState)
}

// TotalChips is the pot plus every bankroll. It is constant for the lifetime
// of a hand; settlement moves the pot into bankrolls without changing it.
func (gs *GameState) TotalChips() int64 {
	total := gs.Pot
	for _, p := range gs.Players {
		total += p.Bankroll
	}
	return total
}
