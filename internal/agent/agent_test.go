package agent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"bazaar/internal/agent"
	"bazaar/internal/game"
	"bazaar/internal/pebble"
	searchpurchase "bazaar/internal/search/purchase"
)

func TestParseActorSpecMinimal(t *testing.T) {
	spec, err := agent.ParseActorSpec([]string{"alice", "purchase-points"})
	assert.NoError(t, err)
	assert.Equal(t, "alice", spec.Name)
	assert.Equal(t, searchpurchase.PolicyPoints, spec.Policy)
}

func TestParseActorSpecRejectsBadName(t *testing.T) {
	_, err := agent.ParseActorSpec([]string{"al ice", "purchase-points"})
	assert.Error(t, err)
}

func TestParseActorSpecRejectsBadPolicy(t *testing.T) {
	_, err := agent.ParseActorSpec([]string{"alice", "purchase-fastest"})
	assert.Error(t, err)
}

func TestParseActorSpecWithFaultPointAndDefaultCount(t *testing.T) {
	spec, err := agent.ParseActorSpec([]string{"alice", "purchase-size", "win"})
	assert.NoError(t, err)
	assert.Equal(t, agent.FaultWin, spec.FaultPoint)
	assert.Equal(t, 1, spec.FaultCount)
}

func TestParseActorSpecWithFaultPointAndCount(t *testing.T) {
	spec, err := agent.ParseActorSpec([]string{"alice", "purchase-size", "request-cards", "3"})
	assert.NoError(t, err)
	assert.Equal(t, agent.FaultRequestPurchase, spec.FaultPoint)
	assert.Equal(t, 3, spec.FaultCount)
}

func TestParseActorSpecRejectsOutOfRangeCount(t *testing.T) {
	_, err := agent.ParseActorSpec([]string{"alice", "purchase-size", "win", "8"})
	assert.Error(t, err)
}

func TestParseActorSpecWithCheat(t *testing.T) {
	spec, err := agent.ParseActorSpec([]string{"alice", "purchase-size", "a cheat", "bank-cannot-trade"})
	assert.NoError(t, err)
	assert.Equal(t, agent.CheatBankCannotTrade, spec.Cheat)
}

func TestParseActorSpecsRejectsDuplicateNames(t *testing.T) {
	_, err := agent.ParseActorSpecs([][]string{
		{"alice", "purchase-points"},
		{"alice", "purchase-size"},
	})
	assert.Error(t, err)
}

func TestParseActorSpecsRejectsTooMany(t *testing.T) {
	raw := make([][]string, 0, 7)
	for i := 0; i < 7; i++ {
		raw = append(raw, []string{"player" + string(rune('A'+i)), "purchase-points"})
	}
	_, err := agent.ParseActorSpecs(raw)
	assert.Error(t, err)
}

func TestAdversaryFaultsOnNthCall(t *testing.T) {
	builtin := agent.NewBuiltin("alice", searchpurchase.PolicyPoints)
	adv := agent.NewAdversary(builtin, agent.FaultWin, 2, "")

	assert.NoError(t, adv.Win(context.Background(), true))
	err := adv.Win(context.Background(), true)
	assert.ErrorIs(t, err, agent.ErrFault)
}

func TestAdversaryCheatInjectsNonExistentEquation(t *testing.T) {
	builtin := agent.NewBuiltin("alice", searchpurchase.PolicyPoints)
	adv := agent.NewAdversary(builtin, "", 0, agent.CheatUseNonExistentEquation)

	// A nonempty bank keeps the wrapped builtin from skipping (ErrFault), so
	// the cheat has a reply to perturb.
	eqs, err := adv.RequestExchange(context.Background(), game.TurnState{Bank: pebble.NewCollection(pebble.Red)})
	assert.NoError(t, err)
	assert.NotEmpty(t, eqs)
}

func TestBuiltinSetupThenRequestExchangeSkipsWhenNoMove(t *testing.T) {
	builtin := agent.NewBuiltin("alice", searchpurchase.PolicyPoints)
	assert.NoError(t, builtin.Setup(context.Background(), nil))

	_, err := builtin.RequestExchange(context.Background(), game.TurnState{})
	assert.ErrorIs(t, err, agent.ErrFault)
}
