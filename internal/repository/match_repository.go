// Package repository stores matches in memory, grounded on the teacher's
// internal/repository/game_repository.go: a map guarded by a RWMutex,
// uuid-generated IDs, deep-copy-on-read, and domain events published when
// a match is created and when an update marks it over (other updates and
// deletes publish nothing).
package repository

import (
	"context"
	"sync"

	"bazaar/internal/bazaarerrors"
	"bazaar/internal/card"
	"bazaar/internal/equation"
	"bazaar/internal/events"
	"bazaar/internal/game"
	"bazaar/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Status is a match's lifecycle stage.
type Status string

const (
	StatusRunning Status = "running"
	StatusOver    Status = "over"
)

// Match is one refereed game: its current state, the actor names bound to
// it, and — once the referee finishes — the final winners/kicked lists.
type Match struct {
	ID      string
	Status  Status
	State   game.State
	Actors  []string
	Winners []string
	Kicked  []string
}

// DeepCopy returns m with every slice/collection field copied, so callers
// can never observe or corrupt the repository's own storage.
func (m *Match) DeepCopy() *Match {
	cp := *m
	cp.Actors = append([]string{}, m.Actors...)
	cp.Winners = append([]string{}, m.Winners...)
	cp.Kicked = append([]string{}, m.Kicked...)
	cp.State.Players = append([]game.PlayerState{}, m.State.Players...)
	cp.State.Visibles = append([]card.Card{}, m.State.Visibles...)
	cp.State.Equations = append([]equation.Equation{}, m.State.Equations...)
	return &cp
}

// MatchRepository is the storage boundary the delivery layer and the
// referee driver consult.
type MatchRepository interface {
	Create(ctx context.Context, state game.State, actors []string) (*Match, error)
	Get(ctx context.Context, matchID string) (*Match, error)
	Update(ctx context.Context, match *Match) error
	List(ctx context.Context, status Status) ([]*Match, error)
	Delete(ctx context.Context, matchID string) error
}

// InMemoryMatchRepository implements MatchRepository with a RWMutex-guarded
// map, per the teacher's GameRepositoryImpl.
type InMemoryMatchRepository struct {
	matches  map[string]*Match
	mutex    sync.RWMutex
	eventBus events.EventBus
}

// NewInMemoryMatchRepository builds an empty repository publishing to
// eventBus (nil disables publication).
func NewInMemoryMatchRepository(eventBus events.EventBus) *InMemoryMatchRepository {
	return &InMemoryMatchRepository{
		matches:  make(map[string]*Match),
		eventBus: eventBus,
	}
}

// Create registers a freshly built game state under a new match ID.
func (r *InMemoryMatchRepository) Create(ctx context.Context, state game.State, actors []string) (*Match, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	id := uuid.New().String()
	m := &Match{
		ID:     id,
		Status: StatusRunning,
		State:  state,
		Actors: append([]string{}, actors...),
	}
	r.matches[id] = m

	log := logger.WithGameContext(id, "")
	log.Debug("match created", zap.Strings("actors", actors))

	if r.eventBus != nil {
		if err := r.eventBus.Publish(ctx, events.NewGameCreatedEvent(id, actors)); err != nil {
			log.Warn("failed to publish match created event", zap.Error(err))
		}
	}

	return m.DeepCopy(), nil
}

// Get retrieves a match by ID.
func (r *InMemoryMatchRepository) Get(ctx context.Context, matchID string) (*Match, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	m, ok := r.matches[matchID]
	if !ok {
		return nil, &bazaarerrors.GameNotFoundError{GameID: matchID}
	}
	return m.DeepCopy(), nil
}

// Update replaces a match's stored state wholesale.
func (r *InMemoryMatchRepository) Update(ctx context.Context, match *Match) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.matches[match.ID]; !ok {
		return &bazaarerrors.GameNotFoundError{GameID: match.ID}
	}
	r.matches[match.ID] = match.DeepCopy()

	log := logger.WithGameContext(match.ID, "")
	if match.Status == StatusOver && r.eventBus != nil {
		if err := r.eventBus.Publish(ctx, events.NewGameOverEvent(match.ID, match.Winners, match.Kicked)); err != nil {
			log.Warn("failed to publish game over event", zap.Error(err))
		}
	}
	return nil
}

// List returns every match, optionally filtered by status ("" means all).
func (r *InMemoryMatchRepository) List(ctx context.Context, status Status) ([]*Match, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]*Match, 0, len(r.matches))
	for _, m := range r.matches {
		if status == "" || m.Status == status {
			out = append(out, m.DeepCopy())
		}
	}
	return out, nil
}

// Delete removes a match from the repository.
func (r *InMemoryMatchRepository) Delete(ctx context.Context, matchID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.matches[matchID]; !ok {
		return &bazaarerrors.GameNotFoundError{GameID: matchID}
	}
	delete(r.matches, matchID)
	return nil
}
