// Package referee implements the four-phase state machine of §4.6 and the
// driver entry point of §6: ExecuteGame drives an untrusted set of player
// agents through Init → Exchange → Purchase → (Exchange | Over), validates
// every action against the rulebook, and kicks misbehaving agents without
// corrupting shared state.
package referee

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"bazaar/internal/agent"
	"bazaar/internal/equation"
	"bazaar/internal/events"
	"bazaar/internal/game"
	"bazaar/internal/logger"
	"bazaar/internal/observer"
	"bazaar/internal/rulebook"

	"go.uber.org/zap"
)

// BonusRules toggles the optional post-game score bonuses of §4.6.
type BonusRules struct {
	RWB bool
	SEY bool
}

// Options configures one ExecuteGame call. Every field is optional; zero
// values fall back to the driver-entry-point defaults of §6.
type Options struct {
	// GameState, when non-nil, is adopted as-is instead of being built
	// fresh. Its player count must match len(agents).
	GameState *game.State
	// Equations, when non-nil, overrides the game state's equation set
	// (or seeds a freshly built game state).
	Equations []equation.Equation
	// Bonus configures the optional RWB/SEY scoring bonuses.
	Bonus BonusRules
	// Seed makes equation/deck generation reproducible. Zero means "use
	// the current time" — i.e. non-deterministic, per the scoping note in
	// SPEC_FULL.md §4.
	Seed int64
	// AgentTimeout bounds each agent callback; zero means unbounded
	// (appropriate for in-process agents, per §5).
	AgentTimeout time.Duration
	// Observers are registered before the game starts.
	Observers []observer.Observer
	// EventBus, when non-nil, receives TurnAdvanced/PlayerKicked/GameOver
	// domain events as the game progresses.
	EventBus events.EventBus
	// GameID identifies this run for logging and event publication.
	GameID string
}

// Result is ExecuteGame's outcome: the sorted winner and kicked actor
// name lists of §6.
type Result struct {
	Winners []string
	Kicked  []string
}

// ExecuteGame drives agents through a complete game and returns the sorted
// winners and kicked lists. It never panics on agent misbehavior: every
// agent callback is wrapped in a fault shield that converts exceptions,
// timeouts, and validator rejections into a kick.
func ExecuteGame(ctx context.Context, agents []agent.Agent, opts Options) Result {
	log := logger.WithGameContext(opts.GameID, "")

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	state := initGameState(rng, agents, opts)
	byName := indexAgents(agents)

	var reg observer.Registry
	for _, obs := range opts.Observers {
		reg.Register(obs)
	}

	kicked := make([]string, 0)

	kick := func(p game.PlayerState, reason string, next game.State) game.State {
		kicked = append(kicked, p.ActorName)
		log.Info("kicking player", zap.String("player", p.ActorName), zap.String("reason", reason))
		if opts.EventBus != nil {
			_ = opts.EventBus.Publish(ctx, events.NewPlayerKickedEvent(opts.GameID, p.ActorName, reason))
		}
		return next
	}

	// Setup: every agent receives the equation set once, before any turn.
	for _, p := range state.Players {
		a, ok := byName[p.ActorName]
		if !ok {
			continue
		}
		if err := callSetup(ctx, a, state.Equations, opts.AgentTimeout); err != nil {
			// setup faults can happen for any player, not just the front
			// of the queue, so remove the specific faulting player rather
			// than KickActive.
			next := removePlayer(state, p.ActorName)
			state = kick(p, string(agent.FaultSetup), next)
		}
	}

	reg.Notify(opts.GameID, state)

	for !state.IsGameOver(currentActiveScore(state)) {
		active, ok := state.ActivePlayer()
		if !ok {
			break
		}
		a, ok := byName[active.ActorName]
		if !ok {
			_, next, _ := state.KickActive()
			state = kick(active, "unbound actor", next)
			reg.Notify(opts.GameID, state)
			continue
		}

		turn, ok := state.ExtractTurnState()
		if !ok {
			break
		}

		nextState, faulted, reason := stepExchange(ctx, a, state, turn, opts)
		if faulted {
			_, afterKick, _ := nextState.KickActive()
			state = kick(active, reason, afterKick)
			reg.Notify(opts.GameID, state)
			if state.IsGameOver(currentActiveScore(state)) {
				break
			}
			continue
		}
		state = nextState
		reg.Notify(opts.GameID, state)

		active2, ok := state.ActivePlayer()
		if !ok {
			break
		}
		turn2, ok := state.ExtractTurnState()
		if !ok {
			break
		}

		nextState2, faulted2, reason2, gained := stepPurchase(ctx, a, state, turn2, opts)
		if faulted2 {
			_, afterKick, _ := nextState2.KickActive()
			state = kick(active2, reason2, afterKick)
			reg.Notify(opts.GameID, state)
			if state.IsGameOver(currentActiveScore(state)) {
				break
			}
			continue
		}
		state = nextState2
		purchaserScore := active2.Score + gained
		state = state.RotateToNextTurn()

		if opts.EventBus != nil {
			if next, ok := state.ActivePlayer(); ok {
				_ = opts.EventBus.Publish(ctx, events.NewTurnAdvancedEvent(opts.GameID, next.ActorName, "exchange"))
			}
		}

		reg.Notify(opts.GameID, state)
		if state.IsGameOver(purchaserScore) {
			break
		}
	}

	winners := computeWinnersWithBonus(state, opts.Bonus)
	finalKicked := append([]string{}, kicked...)

	// Over state: notify winners true, survivors false; fixed-point kick
	// recomputation if a winner's win(true) faults.
	survivors := applyBonuses(state.Players, opts.Bonus)

	for {
		settled := true
		var stillWinners []string
		for _, w := range winners {
			a, ok := byName[w]
			if !ok {
				stillWinners = append(stillWinners, w)
				continue
			}
			if err := callWin(ctx, a, true, opts.AgentTimeout); err != nil {
				finalKicked = append(finalKicked, w)
				survivors = removeByName(survivors, w)
				settled = false
				log.Info("winner faulted on win(true), recomputing", zap.String("player", w))
				if opts.EventBus != nil {
					_ = opts.EventBus.Publish(ctx, events.NewPlayerKickedEvent(opts.GameID, w, string(agent.FaultWin)))
				}
				continue
			}
			stillWinners = append(stillWinners, w)
		}
		if settled {
			winners = stillWinners
			break
		}
		winners = recomputeWinners(survivors)
	}

	winnersSet := make(map[string]bool, len(winners))
	for _, w := range winners {
		winnersSet[w] = true
	}

	for _, p := range survivors {
		if winnersSet[p.ActorName] {
			continue
		}
		a, ok := byName[p.ActorName]
		if !ok {
			continue
		}
		_ = callWin(ctx, a, false, opts.AgentTimeout) // loser faults are not a game-affecting fault per §4.6
	}

	sort.Strings(winners)
	sort.Strings(finalKicked)

	if opts.EventBus != nil {
		_ = opts.EventBus.Publish(ctx, events.NewGameOverEvent(opts.GameID, winners, finalKicked))
	}
	reg.NotifyGameOver(opts.GameID, winners, finalKicked)

	return Result{Winners: winners, Kicked: finalKicked}
}

func indexAgents(agents []agent.Agent) map[string]agent.Agent {
	out := make(map[string]agent.Agent, len(agents))
	for _, a := range agents {
		out[a.Name()] = a
	}
	return out
}

func initGameState(rng *rand.Rand, agents []agent.Agent, opts Options) game.State {
	if opts.GameState != nil {
		s := *opts.GameState
		if opts.Equations != nil {
			s.Equations = opts.Equations
		}
		return s
	}
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.Name()
	}
	return game.NewDefault(rng, names, opts.Equations)
}

func removePlayer(s game.State, name string) game.State {
	players := make([]game.PlayerState, 0, len(s.Players))
	for _, p := range s.Players {
		if p.ActorName != name {
			players = append(players, p)
		}
	}
	s.Players = players
	return s
}

func removeByName(players []game.PlayerState, name string) []game.PlayerState {
	out := make([]game.PlayerState, 0, len(players))
	for _, p := range players {
		if p.ActorName != name {
			out = append(out, p)
		}
	}
	return out
}

func currentActiveScore(s game.State) int {
	if p, ok := s.ActivePlayer(); ok {
		return p.Score
	}
	return 0
}

// recomputeWinners finds the argmax-score players among survivors.
func recomputeWinners(survivors []game.PlayerState) []string {
	if len(survivors) == 0 {
		return nil
	}
	max := survivors[0].Score
	for _, p := range survivors[1:] {
		if p.Score > max {
			max = p.Score
		}
	}
	var out []string
	for _, p := range survivors {
		if p.Score == max {
			out = append(out, p.ActorName)
		}
	}
	return out
}

func computeWinnersWithBonus(s game.State, bonus BonusRules) []string {
	players := applyBonuses(s.Players, bonus)
	if len(players) == 0 {
		return nil
	}
	max := players[0].Score
	for _, p := range players[1:] {
		if p.Score > max {
			max = p.Score
		}
	}
	var out []string
	for _, p := range players {
		if p.Score == max {
			out = append(out, p.ActorName)
		}
	}
	return out
}

// applyBonuses adds the RWB/SEY bonuses once, before final notification,
// per §4.6.
func applyBonuses(players []game.PlayerState, bonus BonusRules) []game.PlayerState {
	const rwbBonus = 10
	const seyBonus = 50

	out := make([]game.PlayerState, len(players))
	for i, p := range players {
		if bonus.RWB && rulebook.HasRWBCard(p.Cards) {
			p = p.WithScore(rwbBonus)
		}
		if bonus.SEY && rulebook.HasSEYCard(p.Cards) {
			p = p.WithScore(seyBonus)
		}
		out[i] = p
	}
	return out
}
