// Package observer implements the out-of-band GameState sink of §4.6's
// design notes: a unidirectional push list the referee owns. Observers
// have no back-reference to the referee, and a faulting observer is
// quietly dropped rather than allowed to disrupt the game.
package observer

import (
	"bazaar/internal/game"
	"bazaar/internal/logger"

	"go.uber.org/zap"
)

// Observer receives every post-transition GameState, and a final
// notification when the game reaches its terminal state.
type Observer interface {
	Update(state game.State) error
	GameOver(winners, kicked []string) error
}

// Registry is the referee-owned, write-only fan-out list of observers.
// The zero value is ready to use.
type Registry struct {
	observers []Observer
}

// Register adds obs to the fan-out list.
func (r *Registry) Register(obs Observer) {
	r.observers = append(r.observers, obs)
}

// Notify pushes state to every registered observer. Any observer whose
// Update call errors is dropped from the list; its absence is durable for
// the rest of the game.
func (r *Registry) Notify(gameID string, state game.State) {
	surviving := r.observers[:0]
	for _, obs := range r.observers {
		if err := obs.Update(state); err != nil {
			logger.WithGameContext(gameID, "").Warn("observer faulted, dropping", zap.Error(err))
			continue
		}
		surviving = append(surviving, obs)
	}
	r.observers = surviving
}

// NotifyGameOver pushes the final winners/kicked lists to every
// registered observer, dropping any that fault.
func (r *Registry) NotifyGameOver(gameID string, winners, kicked []string) {
	surviving := r.observers[:0]
	for _, obs := range r.observers {
		if err := obs.GameOver(winners, kicked); err != nil {
			logger.WithGameContext(gameID, "").Warn("observer faulted on game over, dropping", zap.Error(err))
			continue
		}
		surviving = append(surviving, obs)
	}
	r.observers = surviving
}
