package agent

import (
	"fmt"
	"regexp"

	searchpurchase "bazaar/internal/search/purchase"
)

// MaxActors bounds the number of actors one game accepts, per the
// original implementation's deserialize_actors limit.
const MaxActors = 6

// MinFaultCount and MaxFaultCount bound the accepted fault count, per
// spec.md §6 ("valid counts ∈ [1,7]").
const (
	MinFaultCount = 1
	MaxFaultCount = 7
)

var nameRE = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

var validPolicies = map[string]searchpurchase.Policy{
	"purchase-points": searchpurchase.PolicyPoints,
	"purchase-size":   searchpurchase.PolicySize,
}

var validFaultPoints = map[string]FaultPoint{
	"setup":                    FaultSetup,
	"request-pebble-or-trades": FaultRequestExchange,
	"request-cards":            FaultRequestPurchase,
	"win":                      FaultWin,
}

var validCheatModes = map[string]CheatMode{
	string(CheatUseNonExistentEquation): CheatUseNonExistentEquation,
	string(CheatBankCannotTrade):        CheatBankCannotTrade,
	string(CheatWalletCannotTrade):      CheatWalletCannotTrade,
	string(CheatBuyUnavailableCard):     CheatBuyUnavailableCard,
	string(CheatWalletCannotBuyCard):    CheatWalletCannotBuyCard,
}

// Spec is a parsed actor specification: a built-in agent bound to Name
// under Policy, optionally wrapped in adversary fault/cheat injection.
type Spec struct {
	Name       string
	Policy     searchpurchase.Policy
	FaultPoint FaultPoint
	FaultCount int
	Cheat      CheatMode
}

// Build constructs the Agent this Spec describes.
func (s Spec) Build() Agent {
	builtin := NewBuiltin(s.Name, s.Policy)
	if s.FaultPoint == "" && s.Cheat == "" {
		return builtin
	}
	return NewAdversary(builtin, s.FaultPoint, s.FaultCount, s.Cheat)
}

// ParseActorSpec parses one actor specification list, matching the grammar
// of spec.md §6:
//
//	[name, policy]
//	[name, policy, exn]
//	[name, policy, exn, count]
//	[name, policy, "a cheat", cheatTag]
func ParseActorSpec(fields []string) (Spec, error) {
	if len(fields) < 2 || len(fields) > 4 {
		return Spec{}, fmt.Errorf("agent: actor spec must have 2-4 fields, got %d", len(fields))
	}
	name := fields[0]
	if !nameRE.MatchString(name) {
		return Spec{}, fmt.Errorf("agent: invalid actor name %q", name)
	}
	policy, ok := validPolicies[fields[1]]
	if !ok {
		return Spec{}, fmt.Errorf("agent: invalid policy %q", fields[1])
	}

	spec := Spec{Name: name, Policy: policy}

	switch len(fields) {
	case 2:
		return spec, nil
	case 3:
		fp, ok := validFaultPoints[fields[2]]
		if !ok {
			return Spec{}, fmt.Errorf("agent: invalid fault point %q", fields[2])
		}
		spec.FaultPoint = fp
		spec.FaultCount = MinFaultCount
		return spec, nil
	case 4:
		if fields[2] == "a cheat" {
			cheat, ok := validCheatModes[fields[3]]
			if !ok {
				return Spec{}, fmt.Errorf("agent: invalid cheat tag %q", fields[3])
			}
			spec.Cheat = cheat
			return spec, nil
		}
		fp, ok := validFaultPoints[fields[2]]
		if !ok {
			return Spec{}, fmt.Errorf("agent: invalid fault point %q", fields[2])
		}
		count, err := parseFaultCount(fields[3])
		if err != nil {
			return Spec{}, err
		}
		spec.FaultPoint = fp
		spec.FaultCount = count
		return spec, nil
	}
	return Spec{}, fmt.Errorf("agent: unreachable actor spec shape")
}

func parseFaultCount(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("agent: invalid fault count %q", s)
	}
	if n < MinFaultCount || n > MaxFaultCount {
		return 0, fmt.Errorf("agent: fault count %d out of range [%d,%d]", n, MinFaultCount, MaxFaultCount)
	}
	return n, nil
}

// ParseActorSpecs parses a list of actor specs, rejecting more than
// MaxActors entries or duplicate names.
func ParseActorSpecs(rawSpecs [][]string) ([]Spec, error) {
	if len(rawSpecs) > MaxActors {
		return nil, fmt.Errorf("agent: at most %d actors allowed, got %d", MaxActors, len(rawSpecs))
	}
	seen := make(map[string]bool, len(rawSpecs))
	specs := make([]Spec, 0, len(rawSpecs))
	for _, raw := range rawSpecs {
		spec, err := ParseActorSpec(raw)
		if err != nil {
			return nil, err
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("agent: duplicate actor name %q", spec.Name)
		}
		seen[spec.Name] = true
		specs = append(specs, spec)
	}
	return specs, nil
}
