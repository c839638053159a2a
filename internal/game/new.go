package game

import (
	"math/rand"

	"bazaar/internal/card"
	"bazaar/internal/equation"
	"bazaar/internal/pebble"
	"bazaar/internal/rulebook"
)

// NewDefault builds the starting GameState for actorNames per §6's driver
// entry point defaults: a fresh bank, a freshly generated 20-card deck (4
// visible, 16 invisible), one empty-wallet zero-score player per actor,
// and — unless eqs is already populated — 10 freshly generated equations.
func NewDefault(rng *rand.Rand, actorNames []string, eqs []equation.Equation) State {
	if eqs == nil {
		eqs = equation.GenerateRandom(rng, rulebook.EquationCount).All()
	}
	deck := card.GenerateRandomDeck(rng, rulebook.TotalDeckSize)
	cards := deck.Cards()
	visibles := append([]card.Card{}, cards[:rulebook.VisibleSize]...)
	invisible := card.NewDeck(cards[rulebook.VisibleSize:])

	players := make([]PlayerState, len(actorNames))
	for i, name := range actorNames {
		players[i] = NewPlayer(name)
	}

	return State{
		Equations: eqs,
		Bank:      pebble.InitBank(),
		Visibles:  visibles,
		Invisible: invisible,
		Players:   players,
	}
}
