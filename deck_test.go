package holdemtable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeck_DealAllCards(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1)))
	assert.Equal(t, 52, deck.Remaining())

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := deck.Deal()
		assert.Nil(t, err)
		assert.False(t, seen[card], "deck dealt the same card twice")
		seen[card] = true
	}

	assert.Equal(t, 0, deck.Remaining())
	_, err := deck.Deal()
	assert.Equal(t, ErrDeckEmpty, err)
}

func TestDeck_SeededShuffleIsReproducible(t *testing.T) {
	first := NewDeck(rand.New(rand.NewSource(42)))
	second := NewDeck(rand.New(rand.NewSource(42)))

	for i := 0; i < 52; i++ {
		a, errA := first.Deal()
		b, errB := second.Deal()
		assert.Nil(t, errA)
		assert.Nil(t, errB)
		assert.Equal(t, a, b)
	}
}

func TestDeck_ResetRestoresFullDeck(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(3)))
	for i := 0; i < 20; i++ {
		_, err := deck.Deal()
		assert.Nil(t, err)
	}

	deck.Reset()
	assert.Equal(t, 52, deck.Remaining())
}
