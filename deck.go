package holdemtable

import (
	"errors"
	"math/rand"
	"time"
)

var (
	ErrDeckEmpty = errors.New("deck: no cards left")
)

// Deck is the shuffled card source owned by the hand in play. It is not safe
// for concurrent use; the table engine serializes access to it.
type Deck struct {
	cards []Card
	r     *rand.Rand
}

// NewDeck creates a shuffled deck drawing randomness from r. A nil r falls
// back to a time-seeded source.
func NewDeck(r *rand.Rand) *Deck {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := &Deck{r: r}
	d.Reset()
	return d
}

// Reset rebuilds the 52 unique cards and shuffles them with Fisher-Yates.
func (d *Deck) Reset() {
	d.cards = NewStandardDeckCards()
	d.r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckEmpty
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
