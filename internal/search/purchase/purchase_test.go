package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bazaar/internal/card"
	"bazaar/internal/pebble"
	searchpurchase "bazaar/internal/search/purchase"
)

func newCard(t *testing.T, happy bool, cols ...pebble.Color) card.Card {
	t.Helper()
	c, err := card.New(pebble.NewCollection(cols...), happy)
	assert.NoError(t, err)
	return c
}

func TestSearchEmptyWalletYieldsOnlyEmptySequence(t *testing.T) {
	c := newCard(t, false, pebble.Red, pebble.Red, pebble.Blue, pebble.Green, pebble.Yellow)
	results := searchpurchase.Search([]card.Card{c}, pebble.Collection{}, pebble.Collection{}, searchpurchase.PolicyPoints)
	assert.Len(t, results, 1)
	assert.Empty(t, results[0].Cards)
}

func TestSearchPolicyPointsKeepsMaxPoints(t *testing.T) {
	happy := newCard(t, true, pebble.Red, pebble.Red, pebble.Blue, pebble.Green, pebble.Yellow)
	sad := newCard(t, false, pebble.Red, pebble.Red, pebble.Blue, pebble.Green, pebble.White)
	wallet := pebble.NewCollection(pebble.Red, pebble.Red, pebble.Blue, pebble.Green, pebble.Yellow)

	results := searchpurchase.Search([]card.Card{happy, sad}, wallet, pebble.Collection{}, searchpurchase.PolicyPoints)

	maxPoints := 0
	for _, r := range results {
		if r.Points > maxPoints {
			maxPoints = r.Points
		}
	}
	for _, r := range results {
		assert.Equal(t, maxPoints, r.Points)
	}
	assert.Greater(t, maxPoints, 0)
}

func TestSearchPolicySizeKeepsMaxCardCount(t *testing.T) {
	pebbles := pebble.NewCollection(pebble.Red, pebble.Red, pebble.Blue, pebble.Green, pebble.Yellow)
	c1 := newCard(t, false, pebble.Red, pebble.Red, pebble.Blue, pebble.Green, pebble.Yellow)
	c2 := newCard(t, true, pebble.Red, pebble.Red, pebble.Blue, pebble.Green, pebble.Yellow)

	wallet := pebbles.Add(pebbles) // enough for both cards

	results := searchpurchase.Search([]card.Card{c1, c2}, wallet, pebble.Collection{}, searchpurchase.PolicySize)

	maxLen := 0
	for _, r := range results {
		if len(r.Cards) > maxLen {
			maxLen = len(r.Cards)
		}
	}
	assert.Equal(t, 2, maxLen)
	for _, r := range results {
		assert.Equal(t, maxLen, len(r.Cards))
	}
}

func TestRemainingPebbles(t *testing.T) {
	seq := searchpurchase.Sequence{Wallet: pebble.NewCollection(pebble.Red, pebble.Blue)}
	assert.Equal(t, 2, seq.RemainingPebbles())
}
