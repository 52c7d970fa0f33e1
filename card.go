package holdemtable

type Suit int

const (
	Suit_Spade Suit = iota
	Suit_Heart
	Suit_Club
	Suit_Diamond
)

func (s Suit) String() string {
	return [...]string{"♠", "♥", "♣", "♦"}[s]
}

// Rank is the ordinal card value, Two lowest and Ace highest.
type Rank int

const (
	Rank_Two Rank = iota
	Rank_Three
	Rank_Four
	Rank_Five
	Rank_Six
	Rank_Seven
	Rank_Eight
	Rank_Nine
	Rank_Ten
	Rank_Jack
	Rank_Queen
	Rank_King
	Rank_Ace
)

func (r Rank) String() string {
	return [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}[r]
}

// Card is an immutable playing card value.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// NewStandardDeckCards returns all 52 cards in a fixed order.
func NewStandardDeckCards() []Card {
	cards := make([]Card, 0, 52)
	for suit := Suit_Spade; suit <= Suit_Diamond; suit++ {
		for rank := Rank_Two; rank <= Rank_Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}
