// Package exchange implements the exchange search of §4.2: depth-first
// enumeration of every wallet/bank pair reachable from a starting wallet
// and bank via at most rulebook.MaxExchangeDepth equation applications,
// deduplicated by a dominance filter keyed on the resulting wallet.
package exchange

import (
	"bazaar/internal/equation"
	"bazaar/internal/pebble"
	"bazaar/internal/rulebook"
)

// Exchange is one reachable (wallet, bank) pair together with the directed
// equation sequence that produced it.
type Exchange struct {
	Wallet   pebble.Collection
	Bank     pebble.Collection
	Sequence []equation.Directed
}

// Less gives Exchanges the total order search-state dedup and strategy
// tie-breaks rely on: shorter sequences first, then equation-wise
// lexicographic comparison at matching indices.
func (e Exchange) Less(other Exchange) bool {
	if len(e.Sequence) != len(other.Sequence) {
		return len(e.Sequence) < len(other.Sequence)
	}
	for i := range e.Sequence {
		a, b := e.Sequence[i], other.Sequence[i]
		if !a.Consume.Equal(b.Consume) || !a.Produce.Equal(b.Produce) {
			if !a.Consume.Equal(b.Consume) {
				return a.Consume.Less(b.Consume)
			}
			return a.Produce.Less(b.Produce)
		}
	}
	return false
}

// Search enumerates every Exchange reachable from (wallet, bank) using the
// given legal equations, with sequence length at most
// rulebook.MaxExchangeDepth. The initial empty-sequence exchange is not
// included in the result.
func Search(legal []equation.Equation, wallet, bank pebble.Collection) []Exchange {
	explored := make(map[string]Exchange)
	var walk func(current Exchange)
	walk = func(current Exchange) {
		if len(current.Sequence) > 0 {
			addIfBetter(explored, current)
		}
		if len(current.Sequence) >= rulebook.MaxExchangeDepth {
			return
		}
		for _, eq := range legal {
			for _, d := range eq.TradableDirections(current.Wallet, current.Bank) {
				newWallet, newBank, ok := d.Apply(current.Wallet, current.Bank)
				if !ok {
					continue
				}
				seq := append(append([]equation.Directed{}, current.Sequence...), d)
				walk(Exchange{Wallet: newWallet, Bank: newBank, Sequence: seq})
			}
		}
	}
	walk(Exchange{Wallet: wallet, Bank: bank})

	out := make([]Exchange, 0, len(explored))
	for _, e := range explored {
		out = append(out, e)
	}
	return out
}

// addIfBetter applies the dominance filter of §4.2: if no explored
// exchange has the same resulting wallet, add candidate; else replace the
// incumbent only if candidate's sequence sorts before it.
func addIfBetter(explored map[string]Exchange, candidate Exchange) {
	key := candidate.Wallet.Hash()
	incumbent, exists := explored[key]
	if !exists || candidate.Less(incumbent) {
		explored[key] = candidate
	}
}
