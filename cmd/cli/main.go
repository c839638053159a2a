// Command cli is the stdin/stdout driver of spec.md §6: it reads actor
// specs (plus optional equations/game-state overrides) as a single JSON
// document on stdin, runs the referee to completion, and prints the two
// sorted JSON arrays callers depend on to stdout. A human-readable summary
// goes to stderr so piping stdout never mixes the two.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"time"

	"bazaar/internal/agent"
	"bazaar/internal/equation"
	"bazaar/internal/logger"
	"bazaar/internal/referee"
	"bazaar/internal/ui"
	"bazaar/internal/wire"
)

// request is the stdin document shape. GameState and Equations are raw
// JSON so absence (nil) can be distinguished from an explicit empty value.
type request struct {
	Actors    [][]string      `json:"actors"`
	Seed      int64           `json:"seed,omitempty"`
	GameState json.RawMessage `json:"game_state,omitempty"`
	Equations json.RawMessage `json:"equations,omitempty"`
	Bonus     struct {
		RWB bool `json:"rwb,omitempty"`
		SEY bool `json:"sey,omitempty"`
	} `json:"bonus,omitempty"`
	TimeoutMS int64 `json:"agent_timeout_ms,omitempty"`
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "bazaar-cli:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out, errOut io.Writer) error {
	logLevel := "error"
	_ = logger.Init(&logLevel)
	defer logger.Shutdown()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	specs, err := agent.ParseActorSpecs(req.Actors)
	if err != nil {
		return err
	}
	names := make([]string, len(specs))
	agents := make([]agent.Agent, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
		agents[i] = spec.Build()
	}

	opts := referee.Options{
		Seed:         req.Seed,
		AgentTimeout: time.Duration(req.TimeoutMS) * time.Millisecond,
		GameID:       "cli",
		Bonus:        referee.BonusRules{RWB: req.Bonus.RWB, SEY: req.Bonus.SEY},
	}

	if len(req.Equations) > 0 {
		eqs, err := wire.UnmarshalEquations(req.Equations)
		if err != nil {
			return fmt.Errorf("parsing equations: %w", err)
		}
		opts.Equations = eqs
	}

	if len(req.GameState) > 0 {
		state, err := wire.UnmarshalGameState(req.GameState, names)
		if err != nil {
			return fmt.Errorf("parsing game_state: %w", err)
		}
		if opts.Equations != nil {
			state.Equations = opts.Equations
		} else if len(state.Equations) == 0 {
			seed := req.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			state.Equations = equation.GenerateRandom(rand.New(rand.NewSource(seed)), 10).All()
		}
		opts.GameState = &state
	}

	result := referee.ExecuteGame(context.Background(), agents, opts)

	sort.Strings(result.Winners)
	sort.Strings(result.Kicked)

	if err := writeJSONLine(out, result.Winners); err != nil {
		return err
	}
	if err := writeJSONLine(out, result.Kicked); err != nil {
		return err
	}

	ui.RenderOutcome(errOut, result.Winners, result.Kicked)
	return nil
}

// writeJSONLine encodes names as a JSON array, never as JSON null, so an
// empty list still satisfies the "two JSON arrays on stdout" contract.
func writeJSONLine(w io.Writer, names []string) error {
	if names == nil {
		names = []string{}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(names)
}
