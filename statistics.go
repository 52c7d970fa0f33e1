package holdemtable

// TablePlayerGameStatistics accumulates per-seat action counts across the
// whole session.
type TablePlayerGameStatistics struct {
	ActionTimes int    `json:"action_times"`
	RaiseTimes  int    `json:"raise_times"`
	CallTimes   int    `json:"call_times"`
	CheckTimes  int    `json:"check_times"`
	FoldTimes   int    `json:"fold_times"`
	FoldRound   string `json:"fold_round"`
}

func (s *TablePlayerGameStatistics) record(action string, round string) {
	s.ActionTimes++
	switch action {
	case WagerAction_Raise:
		s.RaiseTimes++
	case WagerAction_Call, WagerAction_AllIn:
		s.CallTimes++
	case WagerAction_Check:
		s.CheckTimes++
	case WagerAction_Fold:
		s.FoldTimes++
		s.FoldRound = round
	}
}
