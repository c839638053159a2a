package referee_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"bazaar/internal/agent"
	"bazaar/internal/card"
	"bazaar/internal/equation"
	"bazaar/internal/game"
	"bazaar/internal/pebble"
	"bazaar/internal/referee"
	searchpurchase "bazaar/internal/search/purchase"
)

// scriptedAgent answers every callback from a preprogrammed script, for
// deterministic control over what the referee sees.
type scriptedAgent struct {
	name          string
	exchangeResp  func(turn game.TurnState) ([]equation.Directed, error)
	purchaseResp  func(turn game.TurnState) (searchpurchase.Sequence, error)
	setupErr      error
	winCalls      []bool
	winErr        error
}

func (s *scriptedAgent) Name() string { return s.name }
func (s *scriptedAgent) Setup(ctx context.Context, equations []equation.Equation) error {
	return s.setupErr
}
func (s *scriptedAgent) RequestExchange(ctx context.Context, turn game.TurnState) ([]equation.Directed, error) {
	if s.exchangeResp == nil {
		return nil, nil
	}
	return s.exchangeResp(turn)
}
func (s *scriptedAgent) RequestPurchase(ctx context.Context, turn game.TurnState) (searchpurchase.Sequence, error) {
	if s.purchaseResp == nil {
		return searchpurchase.Sequence{}, nil
	}
	return s.purchaseResp(turn)
}
func (s *scriptedAgent) Win(ctx context.Context, won bool) error {
	s.winCalls = append(s.winCalls, won)
	return s.winErr
}

func TestExecuteGameSinglePlayerEmptyBankIsTerminal(t *testing.T) {
	bigCard, err := card.New(pebble.NewCollection(pebble.Red, pebble.Red, pebble.Red, pebble.Red, pebble.Red), false)
	assert.NoError(t, err)

	state := game.State{
		Equations: nil,
		Bank:      pebble.Collection{},
		Visibles:  []card.Card{bigCard},
		Invisible: card.NewDeck(nil),
		Players:   []game.PlayerState{game.NewPlayer("alice")},
	}

	a := &scriptedAgent{name: "alice"}
	res := referee.ExecuteGame(context.Background(), []agent.Agent{a}, referee.Options{
		GameState: &state,
		Seed:      1,
		GameID:    "g1",
	})

	assert.Empty(t, res.Kicked)
	assert.Equal(t, []string{"alice"}, res.Winners)
	assert.Equal(t, []bool{true}, a.winCalls)
}

func TestExecuteGameAgentFaultsEveryExchangeGetsKicked(t *testing.T) {
	state := game.State{
		Bank:      pebble.InitBank(),
		Visibles:  []card.Card{mustCard(t, pebble.Red, pebble.Red, pebble.Red, pebble.Red, pebble.Red)},
		Invisible: card.NewDeck(nil),
		Players:   []game.PlayerState{game.NewPlayer("alice")},
	}

	a := &scriptedAgent{
		name: "alice",
		exchangeResp: func(turn game.TurnState) ([]equation.Directed, error) {
			return nil, agent.ErrFault
		},
	}

	res := referee.ExecuteGame(context.Background(), []agent.Agent{a}, referee.Options{
		GameState: &state,
		Seed:      2,
		GameID:    "g2",
	})

	assert.Equal(t, []string{"alice"}, res.Kicked)
	assert.Empty(t, res.Winners)
}

func TestExecuteGameCheatingPlayerIsKickedAndTurnSkipped(t *testing.T) {
	bigCard := mustCard(t, pebble.Red, pebble.Red, pebble.Red, pebble.Red, pebble.Red)

	state := game.State{
		Bank:      pebble.InitBank(),
		Visibles:  []card.Card{bigCard},
		Invisible: card.NewDeck(nil),
		Players: []game.PlayerState{
			game.NewPlayer("cheater"),
			{ActorName: "honest", Wallet: pebble.NewCollection(pebble.Red, pebble.Red, pebble.Red, pebble.Red, pebble.Red)},
		},
	}

	fakeEq := equation.Directed{
		Consume: pebble.NewCollection(pebble.Red, pebble.Red, pebble.Red, pebble.Red),
		Produce: pebble.NewCollection(pebble.White, pebble.White, pebble.White, pebble.White),
	}
	cheater := &scriptedAgent{
		name: "cheater",
		exchangeResp: func(turn game.TurnState) ([]equation.Directed, error) {
			return []equation.Directed{fakeEq}, nil
		},
	}
	honest := &scriptedAgent{
		name: "honest",
		purchaseResp: func(turn game.TurnState) (searchpurchase.Sequence, error) {
			return searchpurchase.Sequence{Cards: []card.Card{bigCard}}, nil
		},
	}

	res := referee.ExecuteGame(context.Background(), []agent.Agent{cheater, honest}, referee.Options{
		GameState: &state,
		Seed:      3,
		GameID:    "g3",
	})

	assert.Contains(t, res.Kicked, "cheater")
	assert.NotContains(t, res.Kicked, "honest")
	assert.Equal(t, []string{"honest"}, res.Winners)
}

func TestExecuteGameDrawOnEmptyBankIsKicked(t *testing.T) {
	bigCard := mustCard(t, pebble.Red, pebble.Red, pebble.Red, pebble.Red, pebble.Red)

	state := game.State{
		Bank:     pebble.Collection{},
		Visibles: []card.Card{bigCard},
		Players: []game.PlayerState{
			game.NewPlayer("alice"),
			{ActorName: "bob", Wallet: pebble.NewCollection(pebble.Red, pebble.Red, pebble.Red, pebble.Red, pebble.Red)},
		},
		Invisible: card.NewDeck(nil),
	}

	a := &scriptedAgent{name: "alice"}
	b := &scriptedAgent{name: "bob"}

	res := referee.ExecuteGame(context.Background(), []agent.Agent{a, b}, referee.Options{
		GameState: &state,
		Seed:      4,
		GameID:    "g4",
	})

	assert.Contains(t, res.Kicked, "alice")
	assert.Contains(t, res.Kicked, "bob")
	assert.Empty(t, res.Winners)
}

func TestExecuteGameRWBBonusAppliedBeforeFinalNotification(t *testing.T) {
	rwbCard := mustCard(t, pebble.Red, pebble.White, pebble.Blue, pebble.Green, pebble.Yellow)

	state := game.State{
		Bank:      pebble.Collection{},
		Visibles:  nil,
		Invisible: card.NewDeck(nil),
		Players: []game.PlayerState{
			{ActorName: "alice", Wallet: pebble.Collection{}, Score: 5, Cards: []card.Card{rwbCard}},
			{ActorName: "bob", Wallet: pebble.Collection{}, Score: 10},
		},
	}

	// Without the +10 RWB bonus bob (10) would outscore alice (5).
	a := &scriptedAgent{name: "alice"}
	b := &scriptedAgent{name: "bob"}
	res := referee.ExecuteGame(context.Background(), []agent.Agent{a, b}, referee.Options{
		GameState: &state,
		Seed:      5,
		GameID:    "g5",
		Bonus:     referee.BonusRules{RWB: true},
	})

	assert.Equal(t, []string{"alice"}, res.Winners)
}

func TestExecuteGameWinnerWinFaultIsRecomputed(t *testing.T) {
	state := game.State{
		Bank:      pebble.Collection{},
		Visibles:  nil,
		Invisible: card.NewDeck(nil),
		Players: []game.PlayerState{
			{ActorName: "alice", Score: 10},
			{ActorName: "bob", Score: 3},
		},
	}

	alice := &scriptedAgent{name: "alice", winErr: agent.ErrFault}
	bob := &scriptedAgent{name: "bob"}

	res := referee.ExecuteGame(context.Background(), []agent.Agent{alice, bob}, referee.Options{
		GameState: &state,
		Seed:      6,
		GameID:    "g6",
	})

	assert.Contains(t, res.Kicked, "alice")
	assert.Equal(t, []string{"bob"}, res.Winners)
}

func mustCard(t *testing.T, colors ...pebble.Color) card.Card {
	t.Helper()
	c, err := card.New(pebble.NewCollection(colors...), false)
	assert.NoError(t, err)
	return c
}
