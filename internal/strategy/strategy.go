// Package strategy combines the exchange and purchase searches to answer
// the two agent callbacks a built-in AI must implement: which equations to
// trade, and which cards to buy. See §4.4.
package strategy

import (
	"bazaar/internal/card"
	"bazaar/internal/equation"
	"bazaar/internal/pebble"
	searchexchange "bazaar/internal/search/exchange"
	searchpurchase "bazaar/internal/search/purchase"
)

// TurnView is the minimal view of a turn a strategy call needs: the
// equations in play, the bank, the active wallet, and the visible cards.
// It mirrors the agent-facing TurnState (see internal/game) without
// depending on that package.
type TurnView struct {
	Equations []equation.Equation
	Bank      pebble.Collection
	Wallet    pebble.Collection
	Visibles  []card.Card
}

// CandidatePair is one (exchange, best purchase after it) combination
// considered by RequestExchange.
type CandidatePair struct {
	Exchange searchexchange.Exchange
	Purchase searchpurchase.Sequence
}

// RequestExchange implements §4.4's request_exchange: run the exchange
// search; for each candidate exchange (plus the no-op "no exchange"
// baseline), run the purchase search over the resulting wallet/bank; keep
// the policy-dominant purchases; tie-break the winning set by fewest
// equations, then by the purchase-policy tie-breakers, then by
// lexicographically smallest equation sequence. Returns the equations of
// the chosen exchange, or nil to mean "draw a pebble" (either no candidate
// exists, or the chosen exchange is the empty one).
//
// skip is true iff the exchange search found nothing AND the bank is
// empty — the agent has no legal move at all and should be treated as
// unable to act (a kicked turn upstream, per §4.4 step 1).
func RequestExchange(view TurnView, policy searchpurchase.Policy) (equations []equation.Directed, skip bool) {
	exchanges := searchexchange.Search(view.Equations, view.Wallet, view.Bank)
	if len(exchanges) == 0 && view.Bank.IsEmpty() {
		return nil, true
	}

	candidates := []CandidatePair{
		noOpCandidate(view, policy),
	}
	for _, ex := range exchanges {
		best := bestPurchaseFor(ex.Wallet, ex.Bank, view.Visibles, policy)
		candidates = append(candidates, CandidatePair{Exchange: ex, Purchase: best})
	}

	candidates = dominantPairs(candidates, policy)
	chosen := tieBreakExchangeAndPurchase(candidates, policy)
	if chosen.Exchange.Sequence == nil {
		return nil, false
	}
	return chosen.Exchange.Sequence, false
}

// RequestPurchase implements §4.4's request_purchase: return the best
// purchase for the already-exchanged turn state, tie-broken by highest
// score, then most-remaining pebbles, then smallest wallet, then shortest
// sequence.
func RequestPurchase(view TurnView, policy searchpurchase.Policy) searchpurchase.Sequence {
	candidates := searchpurchase.Search(view.Visibles, view.Wallet, view.Bank, policy)
	return tieBreakCardPurchase(candidates)
}

func noOpCandidate(view TurnView, policy searchpurchase.Policy) CandidatePair {
	best := bestPurchaseFor(view.Wallet, view.Bank, view.Visibles, policy)
	return CandidatePair{
		Exchange: searchexchange.Exchange{Wallet: view.Wallet, Bank: view.Bank},
		Purchase: best,
	}
}

func bestPurchaseFor(wallet, bank pebble.Collection, visibles []card.Card, policy searchpurchase.Policy) searchpurchase.Sequence {
	candidates := searchpurchase.Search(visibles, wallet, bank, policy)
	return tieBreakCardPurchase(candidates)
}

// dominantPairs keeps only the candidate pairs whose purchase dominates
// under policy, matching §4.3's dominance rule applied to (exchange,
// purchase) pairs.
func dominantPairs(candidates []CandidatePair, policy searchpurchase.Policy) []CandidatePair {
	if len(candidates) == 0 {
		return candidates
	}
	var best []CandidatePair
	for _, c := range candidates {
		if len(best) == 0 {
			best = []CandidatePair{c}
			continue
		}
		cmp := comparePurchase(c.Purchase, best[0].Purchase, policy)
		switch {
		case cmp > 0:
			best = []CandidatePair{c}
		case cmp == 0:
			best = append(best, c)
		}
	}
	return best
}

func comparePurchase(a, b searchpurchase.Sequence, policy searchpurchase.Policy) int {
	if policy == searchpurchase.PolicySize {
		return len(a.Cards) - len(b.Cards)
	}
	return a.Points - b.Points
}

// tieBreakCardPurchase applies the 4-stage chain of §4.4's
// request_purchase tie-break, early-exiting as soon as one candidate
// remains: highest score, most remaining pebbles, smallest wallet,
// shortest sequence.
func tieBreakCardPurchase(candidates []searchpurchase.Sequence) searchpurchase.Sequence {
	if len(candidates) == 0 {
		return searchpurchase.Sequence{}
	}
	filtered := candidates

	filtered = filterMax(filtered, func(s searchpurchase.Sequence) int { return s.Points })
	if len(filtered) == 1 {
		return filtered[0]
	}

	filtered = filterMax(filtered, func(s searchpurchase.Sequence) int { return s.RemainingPebbles() })
	if len(filtered) == 1 {
		return filtered[0]
	}

	filtered = filterSmallestWallet(filtered)
	if len(filtered) == 1 {
		return filtered[0]
	}

	filtered = filterShortestSequence(filtered)
	return filtered[0]
}

func filterMax(seqs []searchpurchase.Sequence, key func(searchpurchase.Sequence) int) []searchpurchase.Sequence {
	max := key(seqs[0])
	for _, s := range seqs[1:] {
		if k := key(s); k > max {
			max = k
		}
	}
	var out []searchpurchase.Sequence
	for _, s := range seqs {
		if key(s) == max {
			out = append(out, s)
		}
	}
	return out
}

func filterSmallestWallet(seqs []searchpurchase.Sequence) []searchpurchase.Sequence {
	smallest := seqs[0].Wallet
	for _, s := range seqs[1:] {
		if s.Wallet.Less(smallest) {
			smallest = s.Wallet
		}
	}
	var out []searchpurchase.Sequence
	for _, s := range seqs {
		if s.Wallet.Equal(smallest) {
			out = append(out, s)
		}
	}
	return out
}

func filterShortestSequence(seqs []searchpurchase.Sequence) []searchpurchase.Sequence {
	shortest := len(seqs[0].Cards)
	for _, s := range seqs[1:] {
		if len(s.Cards) < shortest {
			shortest = len(s.Cards)
		}
	}
	var out []searchpurchase.Sequence
	for _, s := range seqs {
		if len(s.Cards) == shortest {
			out = append(out, s)
		}
	}
	return out
}

// tieBreakExchangeAndPurchase applies the 3-stage chain of §4.4's
// request_exchange tie-break: fewest equations, then the purchase-policy
// tie-breakers (reusing tieBreakCardPurchase), then lexicographically
// smallest equation sequence.
func tieBreakExchangeAndPurchase(candidates []CandidatePair, policy searchpurchase.Policy) CandidatePair {
	if len(candidates) == 0 {
		return CandidatePair{}
	}
	filtered := candidates

	filtered = filterFewestEquations(filtered)
	if len(filtered) == 1 {
		return filtered[0]
	}

	filtered = filterByBestPurchase(filtered)
	if len(filtered) == 1 {
		return filtered[0]
	}

	return filterSmallestExchangeSequence(filtered)
}

func filterFewestEquations(candidates []CandidatePair) []CandidatePair {
	fewest := len(candidates[0].Exchange.Sequence)
	for _, c := range candidates[1:] {
		if n := len(c.Exchange.Sequence); n < fewest {
			fewest = n
		}
	}
	var out []CandidatePair
	for _, c := range candidates {
		if len(c.Exchange.Sequence) == fewest {
			out = append(out, c)
		}
	}
	return out
}

// filterByBestPurchase keeps the candidates whose purchase sequence equals
// (same points, cards and wallet) the single sequence tieBreakCardPurchase
// selects from all candidates' purchases.
func filterByBestPurchase(candidates []CandidatePair) []CandidatePair {
	seqs := make([]searchpurchase.Sequence, len(candidates))
	for i, c := range candidates {
		seqs[i] = c.Purchase
	}

	winner := tieBreakCardPurchase(seqs)
	var out []CandidatePair
	for _, c := range candidates {
		if sameSequence(c.Purchase, winner) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return candidates
	}
	return out
}

func sameSequence(a, b searchpurchase.Sequence) bool {
	if a.Points != b.Points || len(a.Cards) != len(b.Cards) {
		return false
	}
	if !a.Wallet.Equal(b.Wallet) {
		return false
	}
	for i := range a.Cards {
		if !a.Cards[i].Equal(b.Cards[i]) {
			return false
		}
	}
	return true
}

func filterSmallestExchangeSequence(candidates []CandidatePair) CandidatePair {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Exchange.Less(best.Exchange) {
			best = c
		}
	}
	return best
}
