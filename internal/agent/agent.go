// Package agent implements the player-agent capability set of §4.7: the
// Agent interface the referee drives, a strategy-backed built-in AI, and
// an adversary wrapper that injects test-only faults and cheats.
package agent

import (
	"context"
	"errors"

	"bazaar/internal/equation"
	"bazaar/internal/game"
	searchpurchase "bazaar/internal/search/purchase"
)

// ErrFault is returned by an agent callback to signal a fault the referee
// must treat as a kick: an exception, a timeout, or (for the built-in
// adversary wrapper) an injected failure.
var ErrFault = errors.New("agent: fault")

// Agent is the abstract capability the referee consults. Every method may
// return an error, which the referee's fault shield (see internal/referee)
// converts into a kick rather than propagating.
type Agent interface {
	// Name returns this agent's bound actor name.
	Name() string
	// Setup delivers the game's fixed equation set once, before any turn.
	Setup(ctx context.Context, equations []equation.Equation) error
	// RequestExchange asks for a sequence of directed equations to trade.
	// A nil, empty slice means "draw a pebble."
	RequestExchange(ctx context.Context, turn game.TurnState) ([]equation.Directed, error)
	// RequestPurchase asks for an ordered sequence of cards to buy. A nil
	// or empty slice means "buy nothing."
	RequestPurchase(ctx context.Context, turn game.TurnState) (searchpurchase.Sequence, error)
	// Win notifies the agent of the final outcome: true for a winner,
	// false otherwise.
	Win(ctx context.Context, won bool) error
}
