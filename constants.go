package holdemtable

const (
	// General
	UnsetValue = -1

	// Table
	TableSeatCount = 4

	// Round
	GameRound_Preflop  = "preflop"
	GameRound_Flop     = "flop"
	GameRound_Turn     = "turn"
	GameRound_River    = "river"
	GameRound_Showdown = "showdown"

	// Wager Action
	WagerAction_Fold  = "fold"
	WagerAction_Check = "check"
	WagerAction_Call  = "call"
	WagerAction_Raise = "raise"
	WagerAction_AllIn = "allin"

	// Chips
	DefaultStartingChips  int64 = 1000
	DefaultRaiseIncrement int64 = 50
)
