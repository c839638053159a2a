// Package purchase implements the purchase search of §4.3: depth-first
// enumeration of every ordered, affordable card sequence purchasable from
// a set of visible cards, kept or discarded by a policy-driven dominance
// rule.
package purchase

import (
	"bazaar/internal/card"
	"bazaar/internal/pebble"
	"bazaar/internal/rulebook"
)

// Policy selects which dominance rule the search applies.
type Policy string

// The two strategy policies named in spec.md §6.
const (
	PolicyPoints Policy = "purchase-points"
	PolicySize   Policy = "purchase-size"
)

// Sequence is one ordered, affordable run of card purchases.
type Sequence struct {
	Cards  []card.Card
	Points int
	Wallet pebble.Collection
	Bank   pebble.Collection
}

// RemainingPebbles is the wallet size left after this sequence's
// purchases.
func (s Sequence) RemainingPebbles() int {
	return s.Wallet.Total()
}

// Search enumerates every affordable ordered purchase sequence reachable
// from visibles given (wallet, bank), keeping only the sequences the
// policy's dominance rule keeps: under PolicyPoints, those tied for
// maximum points; under PolicySize, those tied for maximum card count.
func Search(visibles []card.Card, wallet, bank pebble.Collection, policy Policy) []Sequence {
	var best []Sequence

	var walk func(remaining []card.Card, current Sequence)
	walk = func(remaining []card.Card, current Sequence) {
		addIfBetter(&best, current, policy)

		for i, c := range remaining {
			if !rulebook.CanPurchase(c, current.Wallet) {
				continue
			}
			nextRemaining := make([]card.Card, 0, len(remaining)-1)
			nextRemaining = append(nextRemaining, remaining[:i]...)
			nextRemaining = append(nextRemaining, remaining[i+1:]...)

			nextCards := append(append([]card.Card{}, current.Cards...), c)
			points := current.Points + rulebook.ScoreIfBought(c, current.Wallet)
			nextWallet := current.Wallet.Sub(c.Pebbles)
			nextBank := current.Bank.Add(c.Pebbles)

			walk(nextRemaining, Sequence{
				Cards:  nextCards,
				Points: points,
				Wallet: nextWallet,
				Bank:   nextBank,
			})
		}
	}
	walk(visibles, Sequence{Wallet: wallet, Bank: bank})

	return best
}

// addIfBetter implements the dominance rule of §4.3.
func addIfBetter(best *[]Sequence, candidate Sequence, policy Policy) {
	if len(*best) == 0 {
		*best = []Sequence{candidate}
		return
	}
	current := (*best)[0]
	var cmp int
	switch policy {
	case PolicySize:
		cmp = len(candidate.Cards) - len(current.Cards)
	default: // PolicyPoints
		cmp = candidate.Points - current.Points
	}
	switch {
	case cmp > 0:
		*best = []Sequence{candidate}
	case cmp == 0:
		*best = append(*best, candidate)
	}
}
