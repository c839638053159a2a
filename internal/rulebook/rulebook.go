// Package rulebook exposes the pure, stateless rule functions the referee
// and search packages consult: trade/purchase legality, scoring, pebble
// drawing, and the terminal-state test. Nothing here mutates its inputs;
// every operation returns new values.
package rulebook

import (
	"bazaar/internal/card"
	"bazaar/internal/equation"
	"bazaar/internal/pebble"
)

// MaxExchangeDepth bounds the length of a single exchange's equation
// sequence.
const MaxExchangeDepth = 4

// WinThreshold is the score at which a completed purchase ends the game.
const WinThreshold = 20

// VisibleSize is the number of cards kept face-up for purchase.
const VisibleSize = 4

// TotalDeckSize is the combined size of the visible and invisible decks at
// game start.
const TotalDeckSize = 20

// EquationCount is the number of equations dealt per game.
const EquationCount = 10

// Tradable returns every directed form of eq currently legal against
// wallet and bank — zero, one, or both directions, per §4.1.
func Tradable(eq equation.Equation, wallet, bank pebble.Collection) []equation.Directed {
	return eq.TradableDirections(wallet, bank)
}

// ApplyTradeSequence sequentially applies a sequence of directed
// equations, each of which must be one of the directed forms of some
// equation in legal, against the current wallet/bank. It fails (ok=false)
// if the sequence exceeds MaxExchangeDepth, if any step's consume side is
// not a subset of the wallet at that point, its produce side not a subset
// of the bank, or any listed directed equation is not a direction of one
// of the legal equations.
func ApplyTradeSequence(seq []equation.Directed, legal []equation.Equation, wallet, bank pebble.Collection) (newWallet, newBank pebble.Collection, ok bool) {
	if len(seq) > MaxExchangeDepth {
		return wallet, bank, false
	}
	w, b := wallet, bank
	for _, d := range seq {
		if !isDirectionOfAny(d, legal) {
			return wallet, bank, false
		}
		nw, nb, applied := d.Apply(w, b)
		if !applied {
			return wallet, bank, false
		}
		w, b = nw, nb
	}
	return w, b, true
}

func isDirectionOfAny(d equation.Directed, eqs []equation.Equation) bool {
	for _, eq := range eqs {
		if eq.IsDirectionOf(d) {
			return true
		}
	}
	return false
}

// CanPurchase reports whether card c is affordable from wallet.
func CanPurchase(c card.Card, wallet pebble.Collection) bool {
	return c.Pebbles.SubsetOf(wallet)
}

// ApplyPurchaseSequence buys cardsToBuy in order: each must be present in
// visibles and affordable at the moment of its purchase. Spent pebbles
// return to the bank. ok is false (inputs unchanged) if any step is
// illegal.
func ApplyPurchaseSequence(cardsToBuy []card.Card, visibles []card.Card, wallet, bank pebble.Collection) (newWallet, newBank pebble.Collection, ok bool) {
	remainingVisibles := make([]card.Card, len(visibles))
	copy(remainingVisibles, visibles)

	w, b := wallet, bank
	for _, c := range cardsToBuy {
		idx := indexOfCard(remainingVisibles, c)
		if idx < 0 {
			return wallet, bank, false
		}
		if !CanPurchase(c, w) {
			return wallet, bank, false
		}
		w = w.Sub(c.Pebbles)
		b = b.Add(c.Pebbles)
		remainingVisibles = append(remainingVisibles[:idx], remainingVisibles[idx+1:]...)
	}
	return w, b, true
}

func indexOfCard(cards []card.Card, target card.Card) int {
	for i, c := range cards {
		if c.Equal(target) {
			return i
		}
	}
	return -1
}

// ScoreIfBought returns the purchase score for card c given wallet: zero
// if unaffordable, else the reward-table lookup keyed on the card's face
// and min(3, |wallet - c.Pebbles|).
func ScoreIfBought(c card.Card, wallet pebble.Collection) int {
	if !CanPurchase(c, wallet) {
		return 0
	}
	remaining := wallet.Sub(c.Pebbles).Total()
	return card.Reward(remaining, c.Happy)
}

// DrawPebble deterministically draws the smallest-color pebble present in
// bank (red < white < blue < green < yellow). ok is false iff bank is
// empty.
func DrawPebble(bank pebble.Collection) (col pebble.Color, newBank pebble.Collection, ok bool) {
	return pebble.DrawSmallest(bank)
}

// HasRWBCard reports whether any of cards contains at least one red, one
// white, and one blue pebble — the RWB bonus trigger.
func HasRWBCard(cards []card.Card) bool {
	for _, c := range cards {
		if c.Pebbles.Count(pebble.Red) > 0 && c.Pebbles.Count(pebble.White) > 0 && c.Pebbles.Count(pebble.Blue) > 0 {
			return true
		}
	}
	return false
}

// HasSEYCard reports whether any of cards contains all five colors — the
// SEY bonus trigger.
func HasSEYCard(cards []card.Card) bool {
	for _, c := range cards {
		all := true
		for _, col := range pebble.All() {
			if c.Pebbles.Count(col) == 0 {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// CanAnyPlayerBuyAnyCard reports whether at least one of the given wallets
// can afford at least one of the visible cards.
func CanAnyPlayerBuyAnyCard(wallets []pebble.Collection, visibles []card.Card) bool {
	for _, w := range wallets {
		for _, c := range visibles {
			if CanPurchase(c, w) {
				return true
			}
		}
	}
	return false
}

// IsGameOver implements the terminal test of §4.1: the game ends when the
// player queue is empty, OR the active player's score reached the win
// threshold after a completed purchase, OR the visible deck is empty, OR
// the bank is empty and no remaining player can afford any visible card.
// It takes primitive facts rather than a *game.State to keep this package
// free of a dependency on the game package (which itself depends on
// rulebook for scoring/legality).
func IsGameOver(queueEmpty bool, activeScoreAfterPurchase int, visiblesEmpty bool, bankEmpty bool, anyPlayerCanBuy bool) bool {
	if queueEmpty {
		return true
	}
	if activeScoreAfterPurchase >= WinThreshold {
		return true
	}
	if visiblesEmpty {
		return true
	}
	if bankEmpty && !anyPlayerCanBuy {
		return true
	}
	return false
}

// GetHighestScore returns the maximum score among scores, or 0 if scores
// is empty.
func GetHighestScore(scores []int) int {
	max := 0
	for i, s := range scores {
		if i == 0 || s > max {
			max = s
		}
	}
	return max
}
