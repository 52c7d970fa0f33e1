package holdemtable

type TableSetting struct {
	Name        string       `json:"name"`
	JoinPlayers []JoinPlayer `json:"join_players"`
}

type JoinPlayer struct {
	PlayerID    string `json:"player_id"`
	RedeemChips int64  `json:"redeem_chips"`
	IsBot       bool   `json:"is_bot"`
}

type GameSetting struct {
	RaiseIncrement int64
	DealerIndex    int
	Players        []GamePlayerSetting
}

type GamePlayerSetting struct {
	PlayerID string
	Bankroll int64
}

// NewDefaultTableSetting seats one human against three bots with the default
// starting stacks.
func NewDefaultTableSetting() TableSetting {
	return TableSetting{
		Name: "main",
		JoinPlayers: []JoinPlayer{
			{PlayerID: "You", RedeemChips: DefaultStartingChips},
			{PlayerID: "Bot Lefty", RedeemChips: DefaultStartingChips, IsBot: true},
			{PlayerID: "The House", RedeemChips: DefaultStartingChips, IsBot: true},
			{PlayerID: "Bot Righty", RedeemChips: DefaultStartingChips, IsBot: true},
		},
	}
}
