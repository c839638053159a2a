// Package bazaarerrors defines typed, caller-visible errors for the
// service shell's boundary — deserialization and lookup faults (§7
// category 3). Of these, only GameNotFoundError is returned today (by the
// repository); actor-spec and wire parsing report plain errors. Agent and
// observer faults (§7 categories 1, 2) never surface as these; they are
// folded into the referee's kicked list.
package bazaarerrors

import "fmt"

// GameNotFoundError is returned when a lookup targets a game ID the
// repository has no record of.
type GameNotFoundError struct {
	GameID string
}

func (e *GameNotFoundError) Error() string {
	return fmt.Sprintf("game with ID %s not found", e.GameID)
}

// ActorNotFoundError is returned when a name referenced outside the set of
// parsed actor specs is looked up (e.g. by an HTTP handler).
type ActorNotFoundError struct {
	Name string
}

func (e *ActorNotFoundError) Error() string {
	return fmt.Sprintf("actor with name %s not found", e.Name)
}

// InvalidActorSpecError wraps a rejected actor specification: a malformed
// name, unknown policy, unknown fault point, out-of-range fault count,
// unknown cheat tag, too many actors, or a duplicate name.
type InvalidActorSpecError struct {
	Reason string
}

func (e *InvalidActorSpecError) Error() string {
	return fmt.Sprintf("invalid actor specification: %s", e.Reason)
}

// InvalidGameStateError wraps a rejected injected GameState or equation
// set at the driver entry point boundary.
type InvalidGameStateError struct {
	Reason string
}

func (e *InvalidGameStateError) Error() string {
	return fmt.Sprintf("invalid game state: %s", e.Reason)
}
