package actor

import (
	"math/rand"
	"time"

	"github.com/cardroom/holdemtable"
	"github.com/weedbox/timebank"
)

type ActionProbability struct {
	Action string
	Weight float64
}

var (
	// Facing a wager the bot mostly calls, folds sometimes and re-raises
	// occasionally.
	DefaultFacingWagerProbabilities = []ActionProbability{
		{Action: holdemtable.WagerAction_Raise, Weight: 0.2},
		{Action: holdemtable.WagerAction_Call, Weight: 0.5},
		{Action: holdemtable.WagerAction_Fold, Weight: 0.3},
	}

	// With no wager to match the bot checks most of the time.
	DefaultUnopenedProbabilities = []ActionProbability{
		{Action: holdemtable.WagerAction_Raise, Weight: 0.1},
		{Action: holdemtable.WagerAction_Check, Weight: 0.9},
	}
)

// BotRunner drives one bot seat. Feed it every table snapshot through
// UpdateTableState; whenever the snapshot says it is this seat's turn the
// runner picks a weighted random action and submits it back to the engine.
type BotRunner struct {
	engine                   holdemtable.TableEngine
	playerID                 string
	r                        *rand.Rand
	actionDelay              time.Duration
	timebank                 *timebank.TimeBank
	curGameID                string
	lastGameStateTime        int64
	facingWagerProbabilities []ActionProbability
	unopenedProbabilities    []ActionProbability
}

func NewBotRunner(engine holdemtable.TableEngine, playerID string) *BotRunner {
	return &BotRunner{
		engine:                   engine,
		playerID:                 playerID,
		r:                        rand.New(rand.NewSource(time.Now().UnixNano())),
		timebank:                 timebank.NewTimeBank(),
		facingWagerProbabilities: DefaultFacingWagerProbabilities,
		unopenedProbabilities:    DefaultUnopenedProbabilities,
	}
}

// SetActionDelay adds thinking time before each move. Zero means the runner
// acts synchronously inside the table-updated callback.
func (br *BotRunner) SetActionDelay(delay time.Duration) {
	br.actionDelay = delay
}

// SetRandSource replaces the runner's randomness so scripted sessions replay
// the same decisions.
func (br *BotRunner) SetRandSource(r *rand.Rand) {
	br.r = r
}

// SetProbabilities swaps the decision tables, one for facing a wager and one
// for unopened pots. Nil keeps the current table.
func (br *BotRunner) SetProbabilities(facingWager []ActionProbability, unopened []ActionProbability) {
	if facingWager != nil {
		br.facingWagerProbabilities = facingWager
	}
	if unopened != nil {
		br.unopenedProbabilities = unopened
	}
}

func (br *BotRunner) UpdateTableState(table *holdemtable.Table) error {
	playerIdx := table.FindPlayerIdx(br.playerID)
	if playerIdx == holdemtable.UnsetValue {
		return nil
	}

	if !table.State.PlayerStates[playerIdx].IsIn {
		return br.engine.PlayerJoin(br.playerID)
	}

	if table.State.Status != holdemtable.TableStateStatus_TableGamePlaying {
		return nil
	}

	gs := table.State.GameState
	if gs == nil {
		return nil
	}

	// Ignore snapshots that do not move the game forward, otherwise the
	// runner would act twice on the same state.
	if gs.GameID != br.curGameID {
		br.curGameID = gs.GameID
		br.lastGameStateTime = 0
	} else if br.lastGameStateTime >= gs.UpdatedAt {
		return nil
	}
	br.lastGameStateTime = gs.UpdatedAt

	p := gs.GetPlayer(playerIdx)
	if p == nil || p.Fold || p.AllIn || gs.CurrentPlayer != playerIdx {
		return nil
	}

	facingWager := p.Wager < gs.CurrentWager

	if br.actionDelay == 0 {
		return br.requestMove(facingWager)
	}

	return br.timebank.NewTask(br.actionDelay, func(isCancelled bool) {
		if isCancelled {
			return
		}

		br.requestMove(facingWager)
	})
}

func (br *BotRunner) requestMove(facingWager bool) error {
	probabilities := br.unopenedProbabilities
	if facingWager {
		probabilities = br.facingWagerProbabilities
	}

	action := br.calcAction(probabilities)
	return br.submit(action, facingWager)
}

// submit plays the chosen action and degrades to the next cheaper one when
// the engine refuses it, typically a raise the stack cannot cover.
func (br *BotRunner) submit(action string, facingWager bool) error {
	err := br.engine.SubmitAction(br.playerID, action)
	if err != holdemtable.ErrGameInvalidAction {
		return err
	}

	switch action {
	case holdemtable.WagerAction_Raise:
		if facingWager {
			return br.submit(holdemtable.WagerAction_Call, facingWager)
		}
		return br.submit(holdemtable.WagerAction_Check, facingWager)
	case holdemtable.WagerAction_Call:
		return br.submit(holdemtable.WagerAction_Check, facingWager)
	case holdemtable.WagerAction_Check:
		return br.submit(holdemtable.WagerAction_Fold, facingWager)
	}

	return err
}

func (br *BotRunner) calcAction(probabilities []ActionProbability) string {
	totalWeight := 0.0
	for _, p := range probabilities {
		totalWeight += p.Weight
	}

	randomNum := br.r.Float64() * totalWeight
	weightLevel := 0.0
	for _, p := range probabilities {
		weightLevel += p.Weight
		if randomNum < weightLevel {
			return p.Action
		}
	}

	return probabilities[len(probabilities)-1].Action
}
