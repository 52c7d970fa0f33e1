package holdemtable

// DuplicatedRankBonus is added to a hand's score for every card beyond the
// first carrying an already-seen rank, a coarse pair/trips reward.
const DuplicatedRankBonus = 20

// ScoreHand scores two pocket cards combined with the board. The score is the
// sum of rank ordinals over all cards plus DuplicatedRankBonus per duplicated
// rank. Identical inputs always produce the identical score; ties are resolved
// by the settlement's pot split, never by the evaluator.
func ScoreHand(pocket []Card, board []Card) int {
	score := 0
	seen := make(map[Rank]int)
	for _, c := range pocket {
		score += int(c.Rank)
		seen[c.Rank]++
	}
	for _, c := range board {
		score += int(c.Rank)
		seen[c.Rank]++
	}

	duplicated := len(pocket) + len(board) - len(seen)
	return score + duplicated*DuplicatedRankBonus
}

// FindWinners returns the candidates tied at the highest score, preserving
// candidate order. Callers pass candidates in dealer-relative seat order so
// the remainder of a split lands deterministically.
func FindWinners(scores map[int]int, candidates []int) []int {
	bestScore := UnsetValue
	for _, idx := range candidates {
		if score, ok := scores[idx]; ok && score > bestScore {
			bestScore = score
		}
	}

	winners := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		if scores[idx] == bestScore {
			winners = append(winners, idx)
		}
	}
	return winners
}

// splitPot divides a pot between n winners, returning the even share and the
// integer remainder. The remainder is handed out one chip at a time in seat
// order starting left of the dealer.
func splitPot(pot int64, n int) (int64, int64) {
	if n <= 0 {
		return 0, 0
	}
	return pot / int64(n), pot % int64(n)
}
