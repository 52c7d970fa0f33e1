package holdemtable

import (
	"encoding/json"
	"time"

	"github.com/thoas/go-funk"
)

type TableStateStatus string

const (
	TableStateStatus_TableCreated     TableStateStatus = "table_created"      // seats reserved, waiting for everyone to sit down
	TableStateStatus_TableGameStandby TableStateStatus = "table_game_standby" // all seats confirmed, no hand running
	TableStateStatus_TableGamePlaying TableStateStatus = "table_game_playing" // hand in progress
	TableStateStatus_TableGameSettled TableStateStatus = "table_game_settled" // last hand settled, next one may open
	TableStateStatus_TableClosed      TableStateStatus = "table_closed"       // session over
)

type Table struct {
	ID           string      `json:"id"`
	Meta         TableMeta   `json:"meta"`
	State        *TableState `json:"state"`
	UpdateAt     int64       `json:"update_at"`
	UpdateSerial int64       `json:"update_serial"`
}

type TableMeta struct {
	Name           string `json:"name"`
	SeatCount      int    `json:"seat_count"`
	RaiseIncrement int64  `json:"raise_increment"`
}

type TableState struct {
	Status            TableStateStatus       `json:"status"`
	StartAt           int64                  `json:"start_at"`
	GameCount         int                    `json:"game_count"`
	CurrentDealerSeat int                    `json:"current_dealer_seat"`
	PlayerStates      []*TablePlayerState    `json:"player_states"`
	GameState         *GameState             `json:"game_state,omitempty"`
	LastGameAction    *TablePlayerGameAction `json:"last_game_action,omitempty"`
}

type TablePlayerState struct {
	PlayerID       string                    `json:"player_id"`
	Seat           int                       `json:"seat"`
	Bankroll       int64                     `json:"bankroll"`
	IsBot          bool                      `json:"is_bot"`
	IsIn           bool                      `json:"is_in"`
	GameStatistics TablePlayerGameStatistics `json:"game_statistics"`
}

// TablePlayerGameAction is the most recent game action, kept on the table so
// late render subscribers can catch up.
type TablePlayerGameAction struct {
	PlayerID  string `json:"player_id"`
	Seat      int    `json:"seat"`
	GameID    string `json:"game_id"`
	Round     string `json:"round"`
	Action    string `json:"action"`
	Chips     int64  `json:"chips"`
	UpdatedAt int64  `json:"updated_at"`
}

func (t *Table) RefreshUpdateAt() {
	t.UpdateAt = time.Now().Unix()
	t.UpdateSerial++
}

func (t *Table) GetJSON() (string, error) {
	encoded, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (t *Table) FindPlayerIdx(playerID string) int {
	for idx, player := range t.State.PlayerStates {
		if player.PlayerID == playerID {
			return idx
		}
	}
	return UnsetValue
}

// AlivePlayers returns the seats still holding chips.
func (t *Table) AlivePlayers() []*TablePlayerState {
	return funk.Filter(t.State.PlayerStates, func(p *TablePlayerState) bool {
		return p.Bankroll > 0
	}).([]*TablePlayerState)
}

// HumanPlayers returns the seats not driven by a bot.
func (t *Table) HumanPlayers() []*TablePlayerState {
	return funk.Filter(t.State.PlayerStates, func(p *TablePlayerState) bool {
		return !p.IsBot
	}).([]*TablePlayerState)
}
