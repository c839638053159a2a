package game

import (
	"bazaar/internal/card"
	"bazaar/internal/equation"
	"bazaar/internal/pebble"
	"bazaar/internal/rulebook"
)

// State is the referee-owned per-game snapshot: the fixed equation set,
// the shared bank, the visible and invisible decks, and the player queue
// (front is always the active player). Value semantics throughout — every
// mutator returns a new State rather than modifying in place, so the
// referee can hand agents copies without risking aliasing (§5).
type State struct {
	Equations []equation.Equation
	Bank      pebble.Collection
	Visibles  []card.Card
	Invisible card.Deck
	Players   []PlayerState
}

// ActivePlayer returns the front-of-queue player. ok is false if the
// queue is empty.
func (s State) ActivePlayer() (PlayerState, bool) {
	if len(s.Players) == 0 {
		return PlayerState{}, false
	}
	return s.Players[0], true
}

// ExtractTurnState snapshots the active player's view. No internal slices
// or collections are aliased with s — every field is copied.
func (s State) ExtractTurnState() (TurnState, bool) {
	active, ok := s.ActivePlayer()
	if !ok {
		return TurnState{}, false
	}
	scores := make([]int, len(s.Players))
	for i, p := range s.Players {
		scores[i] = p.Score
	}
	visibles := make([]card.Card, len(s.Visibles))
	copy(visibles, s.Visibles)

	return TurnState{
		Bank:         s.Bank,
		ActiveWallet: active.Wallet,
		ActiveScore:  active.Score,
		PlayerScores: scores,
		Visibles:     visibles,
	}, true
}

// KickActive pops the active player off the front of the queue and
// returns both the kicked player and the resulting state.
func (s State) KickActive() (kicked PlayerState, next State, ok bool) {
	if len(s.Players) == 0 {
		return PlayerState{}, s, false
	}
	kicked = s.Players[0]
	next = s
	next.Players = append([]PlayerState{}, s.Players[1:]...)
	return kicked, next, true
}

// RotateToNextTurn rotates the queue one position, moving the
// (just-finished) active player to the back. Only called after a
// successful purchase phase, per §4.5.
func (s State) RotateToNextTurn() State {
	if len(s.Players) <= 1 {
		return s
	}
	next := s
	rotated := append(append([]PlayerState{}, s.Players[1:]...), s.Players[0])
	next.Players = rotated
	return next
}

// DrawForActive appends one pebble of color col to the active player's
// wallet, deducting it from the bank. ok is false (state unchanged) if
// the bank does not contain col or the player queue is empty.
func (s State) DrawForActive(col pebble.Color) (next State, ok bool) {
	if s.Bank.Count(col) == 0 {
		return s, false
	}
	active, found := s.ActivePlayer()
	if !found {
		return s, false
	}
	next = s
	next.Bank = s.Bank.Sub(pebble.NewCollection(col))
	updated := active.WithWallet(active.Wallet.AddPebble(col))
	players := append([]PlayerState{}, s.Players...)
	players[0] = updated
	next.Players = players
	return next, true
}

// WithActivePlayer returns s with the front-of-queue player replaced.
func (s State) WithActivePlayer(p PlayerState) State {
	if len(s.Players) == 0 {
		return s
	}
	players := append([]PlayerState{}, s.Players...)
	players[0] = p
	return State{
		Equations: s.Equations,
		Bank:      s.Bank,
		Visibles:  s.Visibles,
		Invisible: s.Invisible,
		Players:   players,
	}
}

// WithBank returns s with the bank replaced.
func (s State) WithBank(bank pebble.Collection) State {
	s.Bank = bank
	return s
}

// ApplyPurchaseErosion removes the given cards from visibles in order and
// draws up to that many replacements from the front of the invisible
// deck, per §4.5's "bank/visible/invisible invariants after a purchase".
func (s State) ApplyPurchaseErosion(bought []card.Card) State {
	visibles := append([]card.Card{}, s.Visibles...)
	for _, c := range bought {
		for i, v := range visibles {
			if v.Equal(c) {
				visibles = append(visibles[:i], visibles[i+1:]...)
				break
			}
		}
	}
	invisible := s.Invisible
	for range bought {
		drawn, rest, ok := invisible.DrawFront()
		if !ok {
			break
		}
		visibles = append(visibles, drawn)
		invisible = rest
	}
	s.Visibles = visibles
	s.Invisible = invisible
	return s
}

// ApplyTradeErosion implements the "deck erosion on trade" termination
// forcer of §4.5: after a successful non-empty trade sequence, one card is
// popped from the bottom of the invisible deck if nonempty, otherwise from
// the bottom of the visible deck.
func (s State) ApplyTradeErosion() State {
	if !s.Invisible.IsEmpty() {
		cards := s.Invisible.Cards()
		last := cards[len(cards)-1]
		if rest, ok := s.Invisible.DropBack(last); ok {
			s.Invisible = rest
		}
		return s
	}
	if len(s.Visibles) > 0 {
		s.Visibles = s.Visibles[:len(s.Visibles)-1]
	}
	return s
}

// IsGameOver delegates to rulebook.IsGameOver using this state's facts,
// given the active player's score as it stands after the just-completed
// step (the caller passes activeScore explicitly because the purchase step
// must check the score AFTER scoring but the active player may already
// have been rotated out of front position).
func (s State) IsGameOver(activeScoreAfterPurchase int) bool {
	wallets := make([]pebble.Collection, len(s.Players))
	for i, p := range s.Players {
		wallets[i] = p.Wallet
	}
	anyCanBuy := rulebook.CanAnyPlayerBuyAnyCard(wallets, s.Visibles)
	return rulebook.IsGameOver(
		len(s.Players) == 0,
		activeScoreAfterPurchase,
		len(s.Visibles) == 0,
		s.Bank.IsEmpty(),
		anyCanBuy,
	)
}

// PlayerNames returns every bound actor name currently in the queue, in
// seat order.
func (s State) PlayerNames() []string {
	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.ActorName
	}
	return names
}
