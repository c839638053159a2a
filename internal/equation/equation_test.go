package equation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"bazaar/internal/equation"
	"bazaar/internal/pebble"
)

func mustNew(t *testing.T, lhs, rhs pebble.Collection) equation.Equation {
	t.Helper()
	eq, err := equation.New(lhs, rhs)
	assert.NoError(t, err)
	return eq
}

func TestNewRejectsEmptySide(t *testing.T) {
	_, err := equation.New(pebble.Collection{}, pebble.NewCollection(pebble.Red))
	assert.Error(t, err)
}

func TestNewRejectsSharedColor(t *testing.T) {
	_, err := equation.New(
		pebble.NewCollection(pebble.Red),
		pebble.NewCollection(pebble.Red, pebble.Blue),
	)
	assert.Error(t, err)
}

func TestEqualIgnoresDirection(t *testing.T) {
	a := mustNew(t, pebble.NewCollection(pebble.Red), pebble.NewCollection(pebble.Blue))
	b := mustNew(t, pebble.NewCollection(pebble.Blue), pebble.NewCollection(pebble.Red))
	assert.True(t, a.Equal(b))
}

func TestTradableDirectionsBothWays(t *testing.T) {
	eq := mustNew(t, pebble.NewCollection(pebble.Red), pebble.NewCollection(pebble.Blue))
	wallet := pebble.NewCollection(pebble.Red, pebble.Blue)
	bank := pebble.NewCollection(pebble.Red, pebble.Blue)

	dirs := eq.TradableDirections(wallet, bank)
	assert.Len(t, dirs, 2)
}

func TestTradableDirectionsOneWayOnly(t *testing.T) {
	eq := mustNew(t, pebble.NewCollection(pebble.Red), pebble.NewCollection(pebble.Blue))
	wallet := pebble.NewCollection(pebble.Red)
	bank := pebble.NewCollection(pebble.Blue)

	dirs := eq.TradableDirections(wallet, bank)
	assert.Len(t, dirs, 1)
	assert.True(t, dirs[0].Consume.Equal(pebble.NewCollection(pebble.Red)))
}

func TestApplyMovesPebblesBothWays(t *testing.T) {
	eq := mustNew(t, pebble.NewCollection(pebble.Red), pebble.NewCollection(pebble.Blue))
	wallet := pebble.NewCollection(pebble.Red)
	bank := pebble.NewCollection(pebble.Blue)

	d := eq.TradableDirections(wallet, bank)[0]
	newWallet, newBank, ok := d.Apply(wallet, bank)
	assert.True(t, ok)
	assert.True(t, newWallet.Equal(pebble.NewCollection(pebble.Blue)))
	assert.True(t, newBank.Equal(pebble.NewCollection(pebble.Red)))
}

func TestApplyIllegalTradeIsNoop(t *testing.T) {
	eq := mustNew(t, pebble.NewCollection(pebble.Red), pebble.NewCollection(pebble.Blue))
	wallet := pebble.NewCollection(pebble.Green)
	bank := pebble.NewCollection(pebble.Blue)

	d := equation.Directed{Consume: pebble.NewCollection(pebble.Red), Produce: pebble.NewCollection(pebble.Blue)}
	newWallet, newBank, ok := d.Apply(wallet, bank)
	assert.False(t, ok)
	assert.True(t, newWallet.Equal(wallet))
	assert.True(t, newBank.Equal(bank))
}

func TestIsDirectionOf(t *testing.T) {
	eq := mustNew(t, pebble.NewCollection(pebble.Red), pebble.NewCollection(pebble.Blue))
	other := mustNew(t, pebble.NewCollection(pebble.Green), pebble.NewCollection(pebble.Yellow))

	d := eq.Directions()[0]
	assert.True(t, eq.IsDirectionOf(d))
	assert.False(t, other.IsDirectionOf(d))
}

func TestGenerateRandomProducesUniqueDisjointEquations(t *testing.T) {
	set := equation.GenerateRandom(rand.New(rand.NewSource(7)), 10)
	all := set.All()
	assert.Len(t, all, 10)

	seen := make(map[string]bool)
	for _, eq := range all {
		h := eq.Hash()
		assert.False(t, seen[h], "equations must be unique")
		seen[h] = true
	}
}
