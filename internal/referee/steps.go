package referee

import (
	"context"
	"time"

	"bazaar/internal/agent"
	"bazaar/internal/equation"
	"bazaar/internal/game"
	"bazaar/internal/rulebook"
)

// withTimeout wraps ctx with d if d > 0, returning a no-op cancel
// otherwise.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func callSetup(ctx context.Context, a agent.Agent, equations []equation.Equation, timeout time.Duration) error {
	cctx, cancel := withTimeout(ctx, timeout)
	defer cancel()
	return a.Setup(cctx, equations)
}

func callWin(ctx context.Context, a agent.Agent, won bool, timeout time.Duration) error {
	cctx, cancel := withTimeout(ctx, timeout)
	defer cancel()
	return a.Win(cctx, won)
}

// stepExchange runs one Exchange-state step (§4.4) for the active player
// of state, given their turn snapshot. It returns the state to continue
// from, whether the active player faulted (validator-rejected or errored,
// in which case the referee must kick), and a human-readable reason.
//
// A nil/empty reply draws one pebble from the bank. An empty bank with no
// reply means there is nothing to draw, which is itself a fault (the
// built-in agent signals this explicitly via agent.ErrFault from
// RequestExchange).
func stepExchange(ctx context.Context, a agent.Agent, state game.State, turn game.TurnState, opts Options) (game.State, bool, string) {
	cctx, cancel := withTimeout(ctx, opts.AgentTimeout)
	defer cancel()

	seq, err := a.RequestExchange(cctx, turn)
	if err != nil {
		return state, true, string(agent.FaultRequestExchange)
	}

	if len(seq) == 0 {
		col, _, ok := rulebook.DrawPebble(state.Bank)
		if !ok {
			return state, true, string(agent.FaultRequestExchange)
		}
		next, drew := state.DrawForActive(col)
		if !drew {
			return state, true, string(agent.FaultRequestExchange)
		}
		return next, false, ""
	}

	newWallet, newBank, ok := rulebook.ApplyTradeSequence(seq, state.Equations, turn.ActiveWallet, turn.Bank)
	if !ok {
		return state, true, "invalid trade sequence"
	}

	active, found := state.ActivePlayer()
	if !found {
		return state, true, string(agent.FaultRequestExchange)
	}
	next := state.WithActivePlayer(active.WithWallet(newWallet)).WithBank(newBank)
	next = next.ApplyTradeErosion()
	return next, false, ""
}

// stepPurchase runs one Purchase-state step (§4.5): it validates the
// requested purchase sequence against the rulebook, scores it using the
// wallet as it stood at the start of the step (never trusting the
// agent-reported Sequence.Points field), and applies the resulting
// erosion. It returns the updated state, a fault flag/reason, and the
// score gained this step.
func stepPurchase(ctx context.Context, a agent.Agent, state game.State, turn game.TurnState, opts Options) (game.State, bool, string, int) {
	cctx, cancel := withTimeout(ctx, opts.AgentTimeout)
	defer cancel()

	seq, err := a.RequestPurchase(cctx, turn)
	if err != nil {
		return state, true, string(agent.FaultRequestPurchase), 0
	}

	if len(seq.Cards) == 0 {
		return state, false, "", 0
	}

	startWallet := turn.ActiveWallet
	gained := 0
	w := startWallet
	for _, c := range seq.Cards {
		gained += rulebook.ScoreIfBought(c, w)
		w = w.Sub(c.Pebbles)
	}

	newWallet, newBank, ok := rulebook.ApplyPurchaseSequence(seq.Cards, turn.Visibles, startWallet, turn.Bank)
	if !ok {
		return state, true, "invalid purchase sequence", 0
	}

	active, found := state.ActivePlayer()
	if !found {
		return state, true, string(agent.FaultRequestPurchase), 0
	}
	updated := active.WithWallet(newWallet).WithScore(gained)
	for _, c := range seq.Cards {
		updated = updated.AddCard(c)
	}
	next := state.WithActivePlayer(updated).WithBank(newBank)
	next = next.ApplyPurchaseErosion(seq.Cards)
	return next, false, "", gained
}
