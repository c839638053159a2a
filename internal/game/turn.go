package game

import (
	"bazaar/internal/card"
	"bazaar/internal/pebble"
)

// TurnState is the snapshot view handed to an agent for its turn: the
// bank, the active player's wallet and score, every player's score in
// seat order, and the visible cards. Equations are delivered once at
// setup, not per turn (§3).
type TurnState struct {
	Bank         pebble.Collection
	ActiveWallet pebble.Collection
	ActiveScore  int
	PlayerScores []int
	Visibles     []card.Card
}
