// Package game holds the per-game mutable state the referee drives:
// PlayerState, TurnState, and GameState, along with the mutators §4.5
// names (extract turn state, kick, rotate, draw, deck erosion).
package game

import (
	"bazaar/internal/card"
	"bazaar/internal/pebble"
)

// PlayerState is one player's wallet, score, and owned cards. Score is
// monotonic nondecreasing for the lifetime of a game. ActorName binds this
// player to its agent by name; the agent itself is looked up by the
// referee, not stored here, so PlayerState stays a plain value type.
type PlayerState struct {
	ActorName string
	Wallet    pebble.Collection
	Score     int
	Cards     []card.Card
}

// NewPlayer builds a fresh, zero-score player bound to actorName.
func NewPlayer(actorName string) PlayerState {
	return PlayerState{ActorName: actorName}
}

// AddCard returns p with c appended to its owned cards.
func (p PlayerState) AddCard(c card.Card) PlayerState {
	p.Cards = append(append([]card.Card{}, p.Cards...), c)
	return p
}

// WithWallet returns p with its wallet replaced.
func (p PlayerState) WithWallet(w pebble.Collection) PlayerState {
	p.Wallet = w
	return p
}

// WithScore returns p with score increased by delta. delta must be
// nonnegative; the referee is responsible for only ever adding nonnegative
// amounts so score stays monotonic.
func (p PlayerState) WithScore(delta int) PlayerState {
	p.Score += delta
	return p
}
