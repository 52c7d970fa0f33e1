package holdemtable

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/weedbox/syncsaga"
)

var (
	ErrTableInvalidCreateSetting    = errors.New("table: invalid create table setting")
	ErrTablePlayerNotFound          = errors.New("table: player not found")
	ErrTablePlayerInvalidGameAction = errors.New("table: player invalid game action")
	ErrTableOpenGameFailed          = errors.New("table: failed to open game")
	ErrTableGameOver                = errors.New("table: human seat is out of chips")
)

const DefaultAutoJoinTimeout = 2 // seconds

type TableEngine interface {
	// Events
	OnTableUpdated(fn func(*Table))
	OnTableErrorUpdated(fn func(*Table, error))
	OnCardDealt(fn func(playerID string, card Card, faceUp bool))
	OnCommunityRevealed(fn func(cards []Card))
	OnActionTaken(fn func(playerID string, action string, chips int64))
	OnStreetAdvanced(fn func(round string))
	OnHandEnded(fn func(result *GameResult))

	// Table Actions
	GetTable() *Table
	GetGame() Game
	CreateTable(setting TableSetting) (*Table, error)
	CloseTable() error
	StartHand() error

	// Player Table Actions
	PlayerJoin(playerID string) error

	// Player Game Actions
	SubmitAction(playerID string, action string) error
	PlayerFold(playerID string) error
	PlayerCheck(playerID string) error
	PlayerCall(playerID string) error
	PlayerRaise(playerID string) error
}

type tableEngine struct {
	lock            sync.Mutex
	logger          *logrus.Logger
	table           *Table
	game            Game
	deck            *Deck
	r               *rand.Rand
	rg              *syncsaga.ReadyGroup
	raiseIncrement  int64
	autoJoinTimeout int
	deferredEvents  []func()

	onTableUpdated        func(*Table)
	onTableErrorUpdated   func(*Table, error)
	onCardDealt           func(playerID string, card Card, faceUp bool)
	onCommunityRevealed   func(cards []Card)
	onActionTakenCallback func(playerID string, action string, chips int64)
	onStreetAdvanced      func(round string)
	onHandEnded           func(result *GameResult)
}

func NewTableEngine(logLevel uint32, opts ...TableEngineOpt) TableEngine {
	logger := logrus.New()
	logger.SetLevel(logrus.Level(logLevel))

	callbacks := NewTableEngineCallbacks()
	te := &tableEngine{
		logger:                logger,
		rg:                    syncsaga.NewReadyGroup(),
		raiseIncrement:        DefaultRaiseIncrement,
		autoJoinTimeout:       DefaultAutoJoinTimeout,
		onTableUpdated:        callbacks.OnTableUpdated,
		onTableErrorUpdated:   callbacks.OnTableErrorUpdated,
		onCardDealt:           callbacks.OnCardDealt,
		onCommunityRevealed:   callbacks.OnCommunityRevealed,
		onActionTakenCallback: callbacks.OnActionTaken,
		onStreetAdvanced:      callbacks.OnStreetAdvanced,
		onHandEnded:           callbacks.OnHandEnded,
	}

	for _, opt := range opts {
		opt(te)
	}

	if te.r == nil {
		te.r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	te.deck = NewDeck(te.r)

	return te
}

func (te *tableEngine) OnTableUpdated(fn func(*Table)) {
	te.onTableUpdated = fn
}

func (te *tableEngine) OnTableErrorUpdated(fn func(*Table, error)) {
	te.onTableErrorUpdated = fn
}

func (te *tableEngine) OnCardDealt(fn func(playerID string, card Card, faceUp bool)) {
	te.onCardDealt = fn
}

func (te *tableEngine) OnCommunityRevealed(fn func(cards []Card)) {
	te.onCommunityRevealed = fn
}

func (te *tableEngine) OnActionTaken(fn func(playerID string, action string, chips int64)) {
	te.onActionTakenCallback = fn
}

func (te *tableEngine) OnStreetAdvanced(fn func(round string)) {
	te.onStreetAdvanced = fn
}

func (te *tableEngine) OnHandEnded(fn func(result *GameResult)) {
	te.onHandEnded = fn
}

func (te *tableEngine) GetTable() *Table {
	return te.table
}

func (te *tableEngine) GetGame() Game {
	return te.game
}

// CreateTable reserves the four seats and starts a ready group waiting for
// everyone to sit down. Seats that never confirm are sat down automatically
// once the auto-join timeout elapses.
func (te *tableEngine) CreateTable(setting TableSetting) (*Table, error) {
	te.lock.Lock()

	if len(setting.JoinPlayers) != TableSeatCount {
		te.lock.Unlock()
		return nil, ErrTableInvalidCreateSetting
	}
	for _, joinPlayer := range setting.JoinPlayers {
		if joinPlayer.PlayerID == "" || joinPlayer.RedeemChips <= 0 {
			te.lock.Unlock()
			return nil, ErrTableInvalidCreateSetting
		}
	}

	playerStates := make([]*TablePlayerState, 0, len(setting.JoinPlayers))
	for seat, joinPlayer := range setting.JoinPlayers {
		playerStates = append(playerStates, &TablePlayerState{
			PlayerID: joinPlayer.PlayerID,
			Seat:     seat,
			Bankroll: joinPlayer.RedeemChips,
			IsBot:    joinPlayer.IsBot,
		})
	}

	table := &Table{
		ID: uuid.New().String(),
		Meta: TableMeta{
			Name:           setting.Name,
			SeatCount:      TableSeatCount,
			RaiseIncrement: te.raiseIncrement,
		},
		State: &TableState{
			Status:            TableStateStatus_TableCreated,
			StartAt:           UnsetValue,
			CurrentDealerSeat: UnsetValue,
			PlayerStates:      playerStates,
		},
	}
	te.table = table

	// Preparing ready group for waiting all players' join
	te.rg.Stop()
	te.rg.SetTimeoutInterval(te.autoJoinTimeout)
	te.rg.OnTimeout(func(rg *syncsaga.ReadyGroup) {
		for seatIdx, isReady := range rg.GetParticipantStates() {
			if !isReady {
				rg.Ready(seatIdx)
			}
		}
	})
	te.rg.OnCompleted(func(rg *syncsaga.ReadyGroup) {
		te.lock.Lock()
		for _, p := range te.table.State.PlayerStates {
			p.IsIn = true
		}
		if te.table.State.Status == TableStateStatus_TableCreated {
			te.table.State.Status = TableStateStatus_TableGameStandby
		}
		te.lock.Unlock()

		te.emitEvent("AllPlayersIn", "")
	})

	te.rg.ResetParticipants()
	for seat := range te.table.State.PlayerStates {
		te.rg.Add(int64(seat), false)
	}
	te.rg.Start()

	te.lock.Unlock()

	te.emitEvent("CreateTable", "")
	return table, nil
}

func (te *tableEngine) CloseTable() error {
	te.lock.Lock()
	if te.table == nil {
		te.lock.Unlock()
		return ErrTablePlayerInvalidGameAction
	}

	te.table.State.Status = TableStateStatus_TableClosed
	te.rg.Stop()
	te.lock.Unlock()

	te.DumpTableStates()
	te.emitEvent("CloseTable", "")
	return nil
}

// PlayerJoin confirms a reserved seat. The first hand can open once every
// seat has confirmed (or the ready group timed out).
func (te *tableEngine) PlayerJoin(playerID string) error {
	te.lock.Lock()
	if te.table == nil {
		te.lock.Unlock()
		return ErrTablePlayerInvalidGameAction
	}

	playerIdx := te.table.FindPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		te.lock.Unlock()
		return ErrTablePlayerNotFound
	}

	if te.table.State.PlayerStates[playerIdx].IsIn {
		te.lock.Unlock()
		return nil
	}

	te.table.State.PlayerStates[playerIdx].IsIn = true
	te.lock.Unlock()

	te.rg.Ready(int64(playerIdx))

	te.emitEvent("PlayerJoin", playerID)
	return nil
}

func (te *tableEngine) SubmitAction(playerID string, action string) error {
	switch action {
	case WagerAction_Fold:
		return te.PlayerFold(playerID)
	case WagerAction_Check:
		return te.PlayerCheck(playerID)
	case WagerAction_Call:
		return te.PlayerCall(playerID)
	case WagerAction_Raise:
		return te.PlayerRaise(playerID)
	}
	return ErrTablePlayerInvalidGameAction
}

func (te *tableEngine) PlayerFold(playerID string) error {
	return te.runGameMove("PlayerFold", playerID, func(playerIdx int) (string, int64, error) {
		return WagerAction_Fold, 0, te.game.Fold(playerIdx)
	})
}

func (te *tableEngine) PlayerCheck(playerID string) error {
	return te.runGameMove("PlayerCheck", playerID, func(playerIdx int) (string, int64, error) {
		return WagerAction_Check, 0, te.game.Check(playerIdx)
	})
}

func (te *tableEngine) PlayerCall(playerID string) error {
	return te.runGameMove("PlayerCall", playerID, func(playerIdx int) (string, int64, error) {
		action := WagerAction_Call
		chips := int64(0)
		gs := te.game.GetGameState()
		if p := gs.GetPlayer(playerIdx); p != nil {
			chips = gs.CurrentWager - p.Wager
			if chips >= p.Bankroll {
				chips = p.Bankroll
				action = WagerAction_AllIn
			}
		}
		return action, chips, te.game.Call(playerIdx)
	})
}

func (te *tableEngine) PlayerRaise(playerID string) error {
	return te.runGameMove("PlayerRaise", playerID, func(playerIdx int) (string, int64, error) {
		action := WagerAction_Raise
		chips := int64(0)
		gs := te.game.GetGameState()
		if p := gs.GetPlayer(playerIdx); p != nil {
			chips = gs.CurrentWager + te.table.Meta.RaiseIncrement - p.Wager
			if chips == p.Bankroll {
				action = WagerAction_AllIn
			}
		}
		return action, chips, te.game.Raise(playerIdx)
	})
}

// runGameMove validates and applies one game action, then flushes the render
// events it produced in chronological order: the action itself first, then
// any street transitions and the hand-ended event, then the table update.
func (te *tableEngine) runGameMove(eventName string, playerID string, move func(playerIdx int) (string, int64, error)) error {
	te.lock.Lock()

	playerIdx, err := te.validateGameMove(playerID)
	if err != nil {
		te.lock.Unlock()
		return err
	}

	round := te.game.GetGameState().Round
	action, chips, err := move(playerIdx)
	if err != nil {
		te.deferredEvents = nil
		te.lock.Unlock()
		return err
	}

	te.recordGameAction(playerIdx, action, chips, round)
	deferred := te.drainDeferredEvents()
	te.lock.Unlock()

	te.onActionTakenCallback(playerID, action, chips)
	for _, emit := range deferred {
		emit()
	}
	te.emitEvent(eventName, playerID)
	return nil
}

func (te *tableEngine) validateGameMove(playerID string) (int, error) {
	if te.table == nil || te.game == nil || te.table.State.Status != TableStateStatus_TableGamePlaying {
		return UnsetValue, ErrTablePlayerInvalidGameAction
	}

	playerIdx := te.table.FindPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		return UnsetValue, ErrTablePlayerNotFound
	}

	return playerIdx, nil
}

func (te *tableEngine) recordGameAction(playerIdx int, action string, chips int64, round string) {
	player := te.table.State.PlayerStates[playerIdx]
	player.GameStatistics.record(action, round)

	te.table.State.LastGameAction = &TablePlayerGameAction{
		PlayerID:  player.PlayerID,
		Seat:      playerIdx,
		GameID:    te.game.GetGameState().GameID,
		Round:     round,
		Action:    action,
		Chips:     chips,
		UpdatedAt: time.Now().Unix(),
	}
}
