package holdemtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreHand_HighCardsOnly(t *testing.T) {
	pocket := []Card{
		{Suit: Suit_Spade, Rank: Rank_Ace},
		{Suit: Suit_Heart, Rank: Rank_King},
	}
	board := []Card{
		{Suit: Suit_Club, Rank: Rank_Two},
		{Suit: Suit_Diamond, Rank: Rank_Five},
		{Suit: Suit_Spade, Rank: Rank_Nine},
	}

	// 12 + 11 + 0 + 3 + 7, no duplicated ranks.
	assert.Equal(t, 33, ScoreHand(pocket, board))
}

func TestScoreHand_PairBeatsHigherRanks(t *testing.T) {
	pair := []Card{
		{Suit: Suit_Spade, Rank: Rank_Nine},
		{Suit: Suit_Heart, Rank: Rank_Nine},
	}
	highCards := []Card{
		{Suit: Suit_Spade, Rank: Rank_Ace},
		{Suit: Suit_Heart, Rank: Rank_King},
	}
	board := []Card{
		{Suit: Suit_Club, Rank: Rank_Three},
		{Suit: Suit_Diamond, Rank: Rank_Six},
		{Suit: Suit_Spade, Rank: Rank_Eight},
	}

	assert.Greater(t, ScoreHand(pair, board), ScoreHand(highCards, board))
}

func TestScoreHand_DuplicatesOnBoardCountToo(t *testing.T) {
	pocket := []Card{
		{Suit: Suit_Spade, Rank: Rank_Four},
		{Suit: Suit_Heart, Rank: Rank_Ten},
	}
	board := []Card{
		{Suit: Suit_Club, Rank: Rank_Four},
		{Suit: Suit_Diamond, Rank: Rank_Four},
		{Suit: Suit_Spade, Rank: Rank_Ten},
	}

	// Ranks sum to 22 with three duplicated cards across pocket and board.
	assert.Equal(t, 22+3*DuplicatedRankBonus, ScoreHand(pocket, board))
}

func TestScoreHand_Deterministic(t *testing.T) {
	pocket := []Card{
		{Suit: Suit_Spade, Rank: Rank_Jack},
		{Suit: Suit_Heart, Rank: Rank_Jack},
	}
	board := []Card{
		{Suit: Suit_Club, Rank: Rank_Two},
		{Suit: Suit_Diamond, Rank: Rank_Seven},
		{Suit: Suit_Spade, Rank: Rank_Queen},
		{Suit: Suit_Heart, Rank: Rank_Three},
		{Suit: Suit_Club, Rank: Rank_Nine},
	}

	first := ScoreHand(pocket, board)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreHand(pocket, board))
	}
}

func TestFindWinners(t *testing.T) {
	scores := map[int]int{0: 30, 1: 45, 2: 45, 3: 12}

	assert.Equal(t, []int{1, 2}, FindWinners(scores, []int{1, 2, 3, 0}))

	// Candidate order is preserved, not sorted.
	assert.Equal(t, []int{2, 1}, FindWinners(scores, []int{3, 2, 1, 0}))

	// A folded seat left out of the candidates never wins.
	assert.Equal(t, []int{0}, FindWinners(scores, []int{3, 0}))
}

func TestSplitPot(t *testing.T) {
	share, remainder := splitPot(200, 2)
	assert.Equal(t, int64(100), share)
	assert.Equal(t, int64(0), remainder)

	share, remainder = splitPot(205, 2)
	assert.Equal(t, int64(102), share)
	assert.Equal(t, int64(1), remainder)

	share, remainder = splitPot(100, 3)
	assert.Equal(t, int64(33), share)
	assert.Equal(t, int64(1), remainder)

	share, remainder = splitPot(100, 0)
	assert.Equal(t, int64(0), share)
	assert.Equal(t, int64(0), remainder)
}
