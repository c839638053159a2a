package card

import "math/rand"

// Deck is an ordered sequence of cards. Drawing takes from the front;
// erosion (see the game package) removes from the back.
type Deck struct {
	cards []Card
}

// NewDeck wraps a slice of cards as a Deck, front-to-back in the given
// order.
func NewDeck(cards []Card) Deck {
	cp := make([]Card, len(cards))
	copy(cp, cards)
	return Deck{cards: cp}
}

// Cards returns a copy of the deck's cards, front to back.
func (d Deck) Cards() []Card {
	cp := make([]Card, len(d.cards))
	copy(cp, d.cards)
	return cp
}

// Len returns the number of cards remaining.
func (d Deck) Len() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards left.
func (d Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// DrawFront removes and returns the front card. ok is false if the deck is
// empty.
func (d Deck) DrawFront() (c Card, rest Deck, ok bool) {
	if d.IsEmpty() {
		return Card{}, d, false
	}
	return d.cards[0], NewDeck(d.cards[1:]), true
}

// DropBack removes the last card from the deck (used by the "deck erosion
// on trade" rule). ok is false if the deck is empty.
func (d Deck) DropBack(c Card) (rest Deck, ok bool) {
	if d.IsEmpty() {
		return d, false
	}
	return NewDeck(d.cards[:len(d.cards)-1]), true
}

// Append returns a new deck with c added to the back.
func (d Deck) Append(c Card) Deck {
	return NewDeck(append(d.cards, c))
}

// Remove returns a new deck with the first occurrence of c (by Equal)
// removed. ok is false if c is not present.
func (d Deck) Remove(c Card) (rest Deck, ok bool) {
	for i, candidate := range d.cards {
		if candidate.Equal(c) {
			out := make([]Card, 0, len(d.cards)-1)
			out = append(out, d.cards[:i]...)
			out = append(out, d.cards[i+1:]...)
			return NewDeck(out), true
		}
	}
	return d, false
}

// FindMatching returns every card in the deck for which matches reports
// true, in deck order.
func (d Deck) FindMatching(matches func(Card) bool) []Card {
	var out []Card
	for _, c := range d.cards {
		if matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// GenerateRandomDeck builds a deck of n random cards.
func GenerateRandomDeck(rng *rand.Rand, n int) Deck {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = GenerateRandom(rng)
	}
	return NewDeck(cards)
}
