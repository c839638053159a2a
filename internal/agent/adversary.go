package agent

import (
	"context"

	"bazaar/internal/card"
	"bazaar/internal/equation"
	"bazaar/internal/game"
	"bazaar/internal/pebble"
	"bazaar/internal/rulebook"
	searchpurchase "bazaar/internal/search/purchase"
)

// FaultPoint names which callback an adversary injection targets.
type FaultPoint string

// The four fault points an adversary spec may target, per §4.7/§6.
const (
	FaultSetup           FaultPoint = "setup"
	FaultRequestExchange FaultPoint = "request-pebble-or-trades"
	FaultRequestPurchase FaultPoint = "request-cards"
	FaultWin             FaultPoint = "win"
)

// CheatMode names a deliberate response perturbation meant to force a
// validator rejection, per §4.7/§6.
type CheatMode string

// The five recognized cheat modes.
const (
	CheatUseNonExistentEquation CheatMode = "use-non-existent-equation"
	CheatBankCannotTrade        CheatMode = "bank-cannot-trade"
	CheatWalletCannotTrade      CheatMode = "wallet-cannot-trade"
	CheatBuyUnavailableCard     CheatMode = "buy-unavailable-card"
	CheatWalletCannotBuyCard    CheatMode = "wallet-cannot-buy-card"
)

// Adversary wraps an Agent with test-only fault and cheat injection: on
// the configured fault point's N-th call, it faults instead of delegating;
// with a cheat mode configured, the delegate's successful exchange or
// purchase response (whichever the mode targets) is perturbed to force a
// validator rejection instead. Delegate errors pass through unperturbed.
type Adversary struct {
	delegate Agent

	faultPoint FaultPoint
	faultCount int // 1-indexed call number that triggers the fault
	calls      map[FaultPoint]int

	cheat CheatMode
}

// NewAdversary wraps delegate with the given fault point/count (count <= 0
// disables fault injection) and cheat mode (empty disables cheating).
func NewAdversary(delegate Agent, faultPoint FaultPoint, faultCount int, cheat CheatMode) *Adversary {
	return &Adversary{
		delegate:   delegate,
		faultPoint: faultPoint,
		faultCount: faultCount,
		cheat:      cheat,
		calls:      make(map[FaultPoint]int),
	}
}

// Name delegates to the wrapped agent.
func (a *Adversary) Name() string { return a.delegate.Name() }

func (a *Adversary) shouldFault(point FaultPoint) bool {
	if a.faultCount <= 0 || a.faultPoint != point {
		return false
	}
	a.calls[point]++
	return a.calls[point] == a.faultCount
}

// Setup delegates to the wrapped agent unless this call is the configured
// fault point's N-th call.
func (a *Adversary) Setup(ctx context.Context, equations []equation.Equation) error {
	if a.shouldFault(FaultSetup) {
		return ErrFault
	}
	return a.delegate.Setup(ctx, equations)
}

// RequestExchange delegates to the wrapped agent, then applies the
// configured fault/cheat.
func (a *Adversary) RequestExchange(ctx context.Context, turn game.TurnState) ([]equation.Directed, error) {
	if a.shouldFault(FaultRequestExchange) {
		return nil, ErrFault
	}
	eqs, err := a.delegate.RequestExchange(ctx, turn)
	if err != nil {
		return eqs, err
	}
	return a.perturbExchange(eqs, turn), nil
}

// RequestPurchase delegates to the wrapped agent, then applies the
// configured fault/cheat.
func (a *Adversary) RequestPurchase(ctx context.Context, turn game.TurnState) (searchpurchase.Sequence, error) {
	if a.shouldFault(FaultRequestPurchase) {
		return searchpurchase.Sequence{}, ErrFault
	}
	seq, err := a.delegate.RequestPurchase(ctx, turn)
	if err != nil {
		return seq, err
	}
	return a.perturbPurchase(seq, turn), nil
}

// Win delegates to the wrapped agent unless this call is the configured
// fault point's N-th call.
func (a *Adversary) Win(ctx context.Context, won bool) error {
	if a.shouldFault(FaultWin) {
		return ErrFault
	}
	return a.delegate.Win(ctx, won)
}

// perturbExchange applies the exchange-relevant cheat modes: injecting a
// made-up equation, or one whose consume side the wallet/bank can't cover.
func (a *Adversary) perturbExchange(eqs []equation.Directed, turn game.TurnState) []equation.Directed {
	switch a.cheat {
	case CheatUseNonExistentEquation:
		fake := equation.Directed{
			Consume: pebble.NewCollection(pebble.Red, pebble.Red, pebble.Red, pebble.Red),
			Produce: pebble.NewCollection(pebble.White, pebble.White, pebble.White, pebble.White),
		}
		return append(append([]equation.Directed{}, eqs...), fake)
	case CheatWalletCannotTrade:
		overdraft := equation.Directed{
			Consume: turn.ActiveWallet.Add(pebble.NewCollection(pebble.Red, pebble.White, pebble.Blue, pebble.Green)),
			Produce: pebble.NewCollection(pebble.Yellow),
		}
		return []equation.Directed{overdraft}
	case CheatBankCannotTrade:
		overdraft := equation.Directed{
			Consume: pebble.NewCollection(pebble.Red),
			Produce: turn.Bank.Add(pebble.NewCollection(pebble.Red, pebble.White, pebble.Blue, pebble.Green)),
		}
		return []equation.Directed{overdraft}
	default:
		return eqs
	}
}

// perturbPurchase applies the purchase-relevant cheat modes: buying a card
// not among the visibles, or one the wallet can't actually afford.
func (a *Adversary) perturbPurchase(seq searchpurchase.Sequence, turn game.TurnState) searchpurchase.Sequence {
	switch a.cheat {
	case CheatBuyUnavailableCard:
		fake, err := card.New(
			pebble.NewCollection(pebble.Red, pebble.Red, pebble.Red, pebble.Red, pebble.Red),
			true,
		)
		if err != nil {
			return seq
		}
		return searchpurchase.Sequence{Cards: []card.Card{fake}}
	case CheatWalletCannotBuyCard:
		// Mirror wallet_cannot_buy_card_decorator: search for a visible card
		// the active wallet genuinely cannot afford, so the referee's
		// CanPurchase check (validated against the real wallet, not this
		// sequence's own Wallet field) actually rejects it.
		for _, c := range turn.Visibles {
			if !rulebook.CanPurchase(c, turn.ActiveWallet) {
				return searchpurchase.Sequence{Cards: []card.Card{c}}
			}
		}
		return seq
	default:
		return seq
	}
}
