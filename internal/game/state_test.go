package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"bazaar/internal/card"
	"bazaar/internal/game"
	"bazaar/internal/pebble"
)

func newCard(t *testing.T, happy bool, cols ...pebble.Color) card.Card {
	t.Helper()
	c, err := card.New(pebble.NewCollection(cols...), happy)
	assert.NoError(t, err)
	return c
}

func TestNewDefaultBuildsExpectedShapes(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(1)), []string{"alice", "bob"}, nil)

	assert.Equal(t, 100, s.Bank.Total())
	assert.Len(t, s.Equations, 10)
	assert.Len(t, s.Visibles, 4)
	assert.Equal(t, 16, s.Invisible.Len())
	assert.Len(t, s.Players, 2)
	assert.Equal(t, "alice", s.Players[0].ActorName)
}

func TestExtractTurnStateCopiesNoAliasing(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(2)), []string{"a", "b"}, nil)
	turn, ok := s.ExtractTurnState()
	assert.True(t, ok)

	turn.Visibles[0] = newCard(t, true, pebble.Red, pebble.Red, pebble.Blue, pebble.Green, pebble.Yellow)
	assert.False(t, s.Visibles[0].Equal(turn.Visibles[0]))
}

func TestKickActivePopsFront(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(3)), []string{"a", "b"}, nil)
	kicked, next, ok := s.KickActive()
	assert.True(t, ok)
	assert.Equal(t, "a", kicked.ActorName)
	assert.Len(t, next.Players, 1)
	assert.Equal(t, "b", next.Players[0].ActorName)
}

func TestRotateToNextTurnMovesFrontToBack(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(4)), []string{"a", "b", "c"}, nil)
	next := s.RotateToNextTurn()
	assert.Equal(t, []string{"b", "c", "a"}, next.PlayerNames())
}

func TestDrawForActiveMovesPebbleFromBank(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(5)), []string{"a"}, nil)
	next, ok := s.DrawForActive(pebble.Red)
	assert.True(t, ok)
	assert.Equal(t, 19, next.Bank.Count(pebble.Red))
	assert.Equal(t, 1, next.Players[0].Wallet.Count(pebble.Red))
}

func TestDrawForActiveFailsWhenBankEmptyOfColor(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(6)), []string{"a"}, nil)
	s = s.WithBank(pebble.Collection{})
	_, ok := s.DrawForActive(pebble.Red)
	assert.False(t, ok)
}

func TestApplyPurchaseErosionDrawsReplacements(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(7)), []string{"a"}, nil)
	bought := s.Visibles[:1]
	next := s.ApplyPurchaseErosion(bought)

	assert.Len(t, next.Visibles, 4)
	assert.Equal(t, 15, next.Invisible.Len())
}

func TestApplyTradeErosionPopsInvisibleBottomFirst(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(8)), []string{"a"}, nil)
	before := s.Invisible.Len()
	next := s.ApplyTradeErosion()
	assert.Equal(t, before-1, next.Invisible.Len())
	assert.Len(t, next.Visibles, 4)
}

func TestApplyTradeErosionFallsBackToVisiblesWhenInvisibleEmpty(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(9)), []string{"a"}, nil)
	s.Invisible = card.NewDeck(nil)
	next := s.ApplyTradeErosion()
	assert.Len(t, next.Visibles, 3)
}

func TestIsGameOverEmptyQueue(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(10)), nil, nil)
	assert.True(t, s.IsGameOver(0))
}

func TestIsGameOverScoreThreshold(t *testing.T) {
	s := game.NewDefault(rand.New(rand.NewSource(11)), []string{"a"}, nil)
	assert.True(t, s.IsGameOver(20))
	assert.False(t, s.IsGameOver(5))
}
