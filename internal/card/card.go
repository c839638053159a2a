// Package card implements the Card value type (five pebbles plus a happy
// face flag) and the ordered Deck it is drawn from.
package card

import (
	"fmt"
	"math/rand"

	"bazaar/internal/pebble"
)

// PebbleCount is the exact number of pebbles every card carries.
const PebbleCount = 5

// Card is an immutable five-pebble collection plus a happy-face flag that
// increases its purchase reward.
type Card struct {
	Pebbles pebble.Collection
	Happy   bool
}

// New validates and builds a Card. pebbles must contain exactly
// PebbleCount pebbles.
func New(pebbles pebble.Collection, happy bool) (Card, error) {
	if pebbles.Total() != PebbleCount {
		return Card{}, fmt.Errorf("card: must have exactly %d pebbles, got %d", PebbleCount, pebbles.Total())
	}
	return Card{Pebbles: pebbles, Happy: happy}, nil
}

// Equal reports whether two cards have the same pebbles and face flag.
func (c Card) Equal(other Card) bool {
	return c.Happy == other.Happy && c.Pebbles.Equal(other.Pebbles)
}

// Less orders cards: a non-happy card is always less than a happy card
// with the same pebbles; otherwise cards compare by their pebble
// collections.
func (c Card) Less(other Card) bool {
	if c.Pebbles.Equal(other.Pebbles) {
		return !c.Happy && other.Happy
	}
	return c.Pebbles.Less(other.Pebbles)
}

// String renders the card for logging/debugging.
func (c Card) String() string {
	face := ""
	if c.Happy {
		face = " happy"
	}
	return c.Pebbles.String() + face
}

// GenerateRandom builds a single card of PebbleCount random pebbles and a
// coin-flip happy face.
func GenerateRandom(rng *rand.Rand) Card {
	pebbles := pebble.GenerateRandom(rng, PebbleCount)
	happy := rng.Intn(2) == 0
	c, _ := New(pebbles, happy) // GenerateRandom always yields PebbleCount pebbles
	return c
}
