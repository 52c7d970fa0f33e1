package holdemtable

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGamePlayerNotFound = errors.New("game: player not found")
	ErrGameInvalidAction  = errors.New("game: invalid action")
	ErrGameInvalidSetting = errors.New("game: invalid game setting")
	ErrGameAlreadyStarted = errors.New("game: already started")
	ErrGameAlreadyClosed  = errors.New("game: already closed")
)

type Game interface {
	// Events
	OnGameStateUpdated(fn func(*GameState))
	OnGameRoundAdvanced(fn func(round string, dealt []Card))
	OnGameClosed(fn func(*GameResult))

	// Others
	GetGameState() *GameState
	Start() error

	// Player Actions
	Fold(playerIdx int) error
	Check(playerIdx int) error
	Call(playerIdx int) error
	Raise(playerIdx int) error
}

// game drives a single hand from the first deal to settlement. Rounds only
// move forward: preflop, flop, turn, river, showdown. A hand also jumps
// straight to showdown when folds leave a single contender.
type game struct {
	gs                  *GameState
	deck                *Deck
	raiseIncrement      int64
	onGameStateUpdated  func(*GameState)
	onGameRoundAdvanced func(round string, dealt []Card)
	onGameClosed        func(*GameResult)
}

func NewGame(setting GameSetting, deck *Deck) *game {
	increment := setting.RaiseIncrement
	if increment <= 0 {
		increment = DefaultRaiseIncrement
	}

	players := make([]*GamePlayerState, 0, len(setting.Players))
	for idx, ps := range setting.Players {
		players = append(players, &GamePlayerState{
			Idx:      idx,
			PlayerID: ps.PlayerID,
			Bankroll: ps.Bankroll,
			Pocket:   make([]Card, 0, 2),
		})
	}

	return &game{
		gs: &GameState{
			GameID:        uuid.New().String(),
			DealerIndex:   setting.DealerIndex,
			CurrentPlayer: UnsetValue,
			Players:       players,
		},
		deck:                deck,
		raiseIncrement:      increment,
		onGameStateUpdated:  func(*GameState) {},
		onGameRoundAdvanced: func(string, []Card) {},
		onGameClosed:        func(*GameResult) {},
	}
}

func (g *game) OnGameStateUpdated(fn func(*GameState)) {
	g.onGameStateUpdated = fn
}

func (g *game) OnGameRoundAdvanced(fn func(round string, dealt []Card)) {
	g.onGameRoundAdvanced = fn
}

func (g *game) OnGameClosed(fn func(*GameResult)) {
	g.onGameClosed = fn
}

func (g *game) GetGameState() *GameState {
	return g.gs
}

// Start deals two pocket cards to every player, one at a time around the
// table beginning left of the dealer, and opens the preflop round.
func (g *game) Start() error {
	if g.gs.Round != "" {
		return ErrGameAlreadyStarted
	}

	if len(g.gs.Players) < 2 {
		return ErrGameInvalidSetting
	}
	for _, p := range g.gs.Players {
		if p.Bankroll <= 0 {
			return ErrGameInvalidSetting
		}
	}

	g.gs.Round = GameRound_Preflop

	playerCount := len(g.gs.Players)
	for dealt := 0; dealt < 2; dealt++ {
		for offset := 1; offset <= playerCount; offset++ {
			p := g.gs.Players[(g.gs.DealerIndex+offset)%playerCount]
			card, err := g.deck.Deal()
			if err != nil {
				return err
			}
			p.Pocket = append(p.Pocket, card)
		}
	}

	g.gs.CurrentPlayer = g.nextActablePlayer(g.gs.DealerIndex)
	g.touch()
	return nil
}

func (g *game) Fold(playerIdx int) error {
	if err := g.validateMove(playerIdx); err != nil {
		return err
	}

	p := g.gs.Players[playerIdx]
	p.Fold = true
	p.Acted = true

	// Last contender standing wins without further betting.
	if len(g.gs.AlivePlayers()) == 1 {
		g.closeGame(true)
		return nil
	}

	return g.afterAction()
}

func (g *game) Check(playerIdx int) error {
	if err := g.validateMove(playerIdx); err != nil {
		return err
	}

	p := g.gs.Players[playerIdx]
	if p.Wager != g.gs.CurrentWager {
		return ErrGameInvalidAction
	}

	p.Acted = true
	return g.afterAction()
}

func (g *game) Call(playerIdx int) error {
	if err := g.validateMove(playerIdx); err != nil {
		return err
	}

	p := g.gs.Players[playerIdx]
	if p.Wager >= g.gs.CurrentWager {
		return ErrGameInvalidAction
	}

	amount := g.gs.CurrentWager - p.Wager
	if amount >= p.Bankroll {
		// All-in call: the wager is capped at the remaining stack and the
		// player stays eligible for the whole pot. No side pots.
		amount = p.Bankroll
		p.AllIn = true
	}

	p.Bankroll -= amount
	p.Wager += amount
	g.gs.Pot += amount
	p.Acted = true
	return g.afterAction()
}

func (g *game) Raise(playerIdx int) error {
	if err := g.validateMove(playerIdx); err != nil {
		return err
	}

	p := g.gs.Players[playerIdx]
	totalWager := g.gs.CurrentWager + g.raiseIncrement
	needed := totalWager - p.Wager
	if needed > p.Bankroll {
		return ErrGameInvalidAction
	}

	p.Bankroll -= needed
	p.Wager = totalWager
	g.gs.Pot += needed
	g.gs.CurrentWager = totalWager
	p.Acted = true
	if p.Bankroll == 0 {
		p.AllIn = true
	}

	// A raise re-opens the action: everyone else still in the hand has to
	// respond to the new wager before the street can close.
	for _, other := range g.gs.Players {
		if other.Idx != playerIdx && !other.Fold {
			other.Acted = false
		}
	}

	return g.afterAction()
}

func (g *game) validateMove(playerIdx int) error {
	if g.gs.Result != nil {
		return ErrGameAlreadyClosed
	}

	p := g.gs.GetPlayer(playerIdx)
	if p == nil {
		return ErrGamePlayerNotFound
	}

	if g.gs.CurrentPlayer != playerIdx || p.Fold || p.AllIn {
		return ErrGameInvalidAction
	}

	return nil
}

func (g *game) afterAction() error {
	if g.isStreetComplete() {
		return g.advanceRound()
	}

	g.gs.CurrentPlayer = g.nextActablePlayer(g.gs.CurrentPlayer)
	g.touch()
	return nil
}

// isStreetComplete reports whether every player who can still wager has both
// acted since the last raise and matched the current wager. All-in players
// are settled up by definition and folded players are out.
func (g *game) isStreetComplete() bool {
	for _, p := range g.gs.ActablePlayers() {
		if !p.Acted || p.Wager != g.gs.CurrentWager {
			return false
		}
	}
	return true
}

func (g *game) advanceRound() error {
	for _, p := range g.gs.Players {
		p.Wager = 0
		p.Acted = false
	}
	g.gs.CurrentWager = 0

	switch g.gs.Round {
	case GameRound_Preflop:
		g.gs.Round = GameRound_Flop
		if err := g.dealBoardCards(3); err != nil {
			return err
		}
	case GameRound_Flop:
		g.gs.Round = GameRound_Turn
		if err := g.dealBoardCards(1); err != nil {
			return err
		}
	case GameRound_Turn:
		g.gs.Round = GameRound_River
		if err := g.dealBoardCards(1); err != nil {
			return err
		}
	case GameRound_River:
		g.closeGame(false)
		return nil
	default:
		return ErrGameAlreadyClosed
	}

	g.gs.CurrentPlayer = g.nextActablePlayer(g.gs.DealerIndex)
	g.touch()

	// Fewer than two players can still wager, so betting is over for the
	// hand; run the remaining streets out to showdown.
	if len(g.gs.ActablePlayers()) < 2 {
		return g.advanceRound()
	}

	return nil
}

func (g *game) dealBoardCards(count int) error {
	dealt := make([]Card, 0, count)
	for i := 0; i < count; i++ {
		card, err := g.deck.Deal()
		if err != nil {
			return err
		}
		g.gs.Board = append(g.gs.Board, card)
		dealt = append(dealt, card)
	}

	g.onGameRoundAdvanced(g.gs.Round, dealt)
	return nil
}

// nextActablePlayer returns the first seat after the given one that can still
// wager, or UnsetValue when no such seat exists.
func (g *game) nextActablePlayer(fromIdx int) int {
	playerCount := len(g.gs.Players)
	for offset := 1; offset <= playerCount; offset++ {
		p := g.gs.Players[(fromIdx+offset)%playerCount]
		if !p.Fold && !p.AllIn {
			return p.Idx
		}
	}
	return UnsetValue
}

// closeGame settles the pot and freezes the hand. Ties split the pot evenly;
// the integer remainder goes out one chip at a time in seat order starting
// left of the dealer.
func (g *game) closeGame(wonByFolds bool) {
	g.gs.Round = GameRound_Showdown
	g.gs.CurrentPlayer = UnsetValue
	g.gs.CurrentWager = 0
	for _, p := range g.gs.Players {
		p.Wager = 0
		p.Acted = false
	}

	scores := make(map[int]int)
	if !wonByFolds {
		for _, p := range g.gs.AlivePlayers() {
			scores[p.Idx] = ScoreHand(p.Pocket, g.gs.Board)
		}
	}

	// Contenders collected in dealer-relative seat order so the split
	// remainder lands deterministically.
	contenders := make([]int, 0, len(g.gs.Players))
	playerCount := len(g.gs.Players)
	for offset := 1; offset <= playerCount; offset++ {
		p := g.gs.Players[(g.gs.DealerIndex+offset)%playerCount]
		if !p.Fold {
			contenders = append(contenders, p.Idx)
		}
	}

	winners := contenders
	if !wonByFolds {
		winners = FindWinners(scores, contenders)
	}

	pot := g.gs.Pot
	share, remainder := splitPot(pot, len(winners))
	awarded := make(map[int]int64)
	for i, idx := range winners {
		award := share
		if int64(i) < remainder {
			award++
		}
		awarded[idx] = award
		g.gs.Players[idx].Bankroll += award
	}
	g.gs.Pot = 0

	result := &GameResult{
		Winners:    winners,
		Pot:        pot,
		WonByFolds: wonByFolds,
		Players:    make([]*GamePlayerResult, 0, len(g.gs.Players)),
	}
	for _, p := range g.gs.Players {
		score := UnsetValue
		if s, ok := scores[p.Idx]; ok {
			score = s
		}
		result.Players = append(result.Players, &GamePlayerResult{
			Idx:      p.Idx,
			PlayerID: p.PlayerID,
			Score:    score,
			Awarded:  awarded[p.Idx],
			Final:    p.Bankroll,
		})
	}
	g.gs.Result = result

	g.touch()
	g.onGameClosed(result)
}

func (g *game) touch() {
	g.gs.UpdatedAt = time.Now().UnixNano()
	g.onGameStateUpdated(g.gs)
}
