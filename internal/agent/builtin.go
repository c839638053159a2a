package agent

import (
	"context"

	"bazaar/internal/equation"
	"bazaar/internal/game"
	searchpurchase "bazaar/internal/search/purchase"
	"bazaar/internal/strategy"
)

// Builtin is the greedy, tie-broken search AI described in §4.4: it runs
// the exchange and purchase searches and answers every callback with the
// result.
type Builtin struct {
	name      string
	policy    searchpurchase.Policy
	equations []equation.Equation
}

// NewBuiltin constructs a Builtin agent bound to name under policy.
func NewBuiltin(name string, policy searchpurchase.Policy) *Builtin {
	return &Builtin{name: name, policy: policy}
}

// Name returns the agent's bound actor name.
func (b *Builtin) Name() string { return b.name }

// Setup records the game's equation set for later turns.
func (b *Builtin) Setup(ctx context.Context, equations []equation.Equation) error {
	b.equations = equations
	return nil
}

// RequestExchange runs the exchange search and strategy tie-break over the
// current turn state.
func (b *Builtin) RequestExchange(ctx context.Context, turn game.TurnState) ([]equation.Directed, error) {
	view := strategy.TurnView{
		Equations: b.equations,
		Bank:      turn.Bank,
		Wallet:    turn.ActiveWallet,
		Visibles:  turn.Visibles,
	}
	eqs, skip := strategy.RequestExchange(view, b.policy)
	if skip {
		return nil, ErrFault
	}
	return eqs, nil
}

// RequestPurchase runs the purchase search and strategy tie-break over the
// current (already-exchanged) turn state.
func (b *Builtin) RequestPurchase(ctx context.Context, turn game.TurnState) (searchpurchase.Sequence, error) {
	view := strategy.TurnView{
		Bank:     turn.Bank,
		Wallet:   turn.ActiveWallet,
		Visibles: turn.Visibles,
	}
	return strategy.RequestPurchase(view, b.policy), nil
}

// Win is a no-op for the built-in AI: it has no state to react with.
func (b *Builtin) Win(ctx context.Context, won bool) error {
	return nil
}
