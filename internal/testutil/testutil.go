// Package testutil collects fixture builders and test doubles shared
// across the module's test files, grounded on the teacher's
// test/testutil package (a logger helper plus hand-built fixtures, no
// assertion wrappers duplicating testify).
package testutil

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"bazaar/internal/card"
	"bazaar/internal/equation"
	"bazaar/internal/game"
	"bazaar/internal/logger"
	"bazaar/internal/pebble"
	searchpurchase "bazaar/internal/search/purchase"
)

// TestLogger returns the process-wide zap logger, re-initializing it at
// error level on every call.
func TestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	level := "error"
	_ = logger.Init(&level)
	return logger.Get()
}

// Wallet builds a pebble.Collection from color shorthand: "r", "w", "b",
// "g", "y" (repeats allowed), e.g. Wallet(t, "rrrrr") for five reds.
func Wallet(t *testing.T, shorthand string) pebble.Collection {
	t.Helper()
	colors := make([]pebble.Color, 0, len(shorthand))
	for _, r := range shorthand {
		colors = append(colors, colorFromRune(t, r))
	}
	return pebble.NewCollection(colors...)
}

func colorFromRune(t *testing.T, r rune) pebble.Color {
	t.Helper()
	switch r {
	case 'r':
		return pebble.Red
	case 'w':
		return pebble.White
	case 'b':
		return pebble.Blue
	case 'g':
		return pebble.Green
	case 'y':
		return pebble.Yellow
	}
	t.Fatalf("testutil: unknown color shorthand %q", string(r))
	return ""
}

// Card builds a 5-pebble Card from color shorthand (see Wallet), failing
// the test if the pebbles don't add up to exactly five.
func Card(t *testing.T, shorthand string, happy bool) card.Card {
	t.Helper()
	c, err := card.New(Wallet(t, shorthand), happy)
	if err != nil {
		t.Fatalf("testutil: building card %q: %v", shorthand, err)
	}
	return c
}

// Equation builds an Equation from two color shorthands, failing the test
// if the sides aren't disjoint or otherwise invalid.
func Equation(t *testing.T, lhs, rhs string) equation.Equation {
	t.Helper()
	eq, err := equation.New(Wallet(t, lhs), Wallet(t, rhs))
	if err != nil {
		t.Fatalf("testutil: building equation %q<->%q: %v", lhs, rhs, err)
	}
	return eq
}

// StubAgent is a minimal agent.Agent implementation whose callbacks are
// supplied as closures; a nil closure returns the method's zero value
// with no error. WinCalls records every Win invocation in order.
type StubAgent struct {
	NameValue  string
	SetupFn    func(ctx context.Context, equations []equation.Equation) error
	ExchangeFn func(ctx context.Context, turn game.TurnState) ([]equation.Directed, error)
	PurchaseFn func(ctx context.Context, turn game.TurnState) (searchpurchase.Sequence, error)
	WinFn      func(ctx context.Context, won bool) error
	WinCalls   []bool
}

func (s *StubAgent) Name() string { return s.NameValue }

func (s *StubAgent) Setup(ctx context.Context, equations []equation.Equation) error {
	if s.SetupFn != nil {
		return s.SetupFn(ctx, equations)
	}
	return nil
}

func (s *StubAgent) RequestExchange(ctx context.Context, turn game.TurnState) ([]equation.Directed, error) {
	if s.ExchangeFn != nil {
		return s.ExchangeFn(ctx, turn)
	}
	return nil, nil
}

func (s *StubAgent) RequestPurchase(ctx context.Context, turn game.TurnState) (searchpurchase.Sequence, error) {
	if s.PurchaseFn != nil {
		return s.PurchaseFn(ctx, turn)
	}
	return searchpurchase.Sequence{}, nil
}

func (s *StubAgent) Win(ctx context.Context, won bool) error {
	s.WinCalls = append(s.WinCalls, won)
	if s.WinFn != nil {
		return s.WinFn(ctx, won)
	}
	return nil
}

// MockObserver records every Update/GameOver call it receives, for
// assertions on what the referee pushed during a game.
type MockObserver struct {
	UpdateErr    error
	GameOverErr  error
	Updates      int
	FinalWinners []string
	FinalKicked  []string
}

func (m *MockObserver) Update(_ game.State) error {
	m.Updates++
	return m.UpdateErr
}

func (m *MockObserver) GameOver(winners, kicked []string) error {
	m.FinalWinners = winners
	m.FinalKicked = kicked
	return m.GameOverErr
}
