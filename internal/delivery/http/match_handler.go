// Package http implements the Gin HTTP handlers exposed by cmd/server,
// grounded on the teacher's internal/delivery/http handler/DTO split, with
// github.com/gin-gonic/gin in place of the teacher's raw net/http+mux
// handlers to match this module's routing stack.
package http

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"bazaar/internal/agent"
	"bazaar/internal/bazaarerrors"
	"bazaar/internal/events"
	"bazaar/internal/game"
	"bazaar/internal/logger"
	"bazaar/internal/observer"
	"bazaar/internal/referee"
	"bazaar/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ObserverFactory builds the observer.Observer a started match should push
// state through (typically a websocket hub's per-match adapter).
type ObserverFactory func(matchID string) observer.Observer

// MatchHandler exposes match lifecycle operations over HTTP.
type MatchHandler struct {
	repo         repository.MatchRepository
	eventBus     events.EventBus
	observers    ObserverFactory
	agentTimeout time.Duration
}

// NewMatchHandler builds a MatchHandler. observers may be nil (no live
// push); eventBus may be nil (no domain events).
func NewMatchHandler(repo repository.MatchRepository, eventBus events.EventBus, observers ObserverFactory) *MatchHandler {
	return &MatchHandler{
		repo:         repo,
		eventBus:     eventBus,
		observers:    observers,
		agentTimeout: time.Second,
	}
}

// HealthCheck reports service liveness.
func (h *MatchHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "bazaar"})
}

// CreateMatch handles POST /api/v1/matches: it parses the actor specs,
// builds a fresh game, registers it, and starts the referee in the
// background. The response reflects the match's "running" state; callers
// poll GetMatch for the outcome.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	specs, err := agent.ParseActorSpecs(req.Actors)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	agents := make([]agent.Agent, len(specs))
	names := make([]string, len(specs))
	for i, spec := range specs {
		agents[i] = spec.Build()
		names[i] = spec.Name
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state := game.NewDefault(rand.New(rand.NewSource(seed)), names, nil)

	match, err := h.repo.Create(c.Request.Context(), state, names)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	go h.runMatch(match.ID, agents, state, seed, req.Bonus)

	c.JSON(http.StatusCreated, CreateMatchResponse{Match: toMatchDto(match)})
}

func (h *MatchHandler) runMatch(matchID string, agents []agent.Agent, state game.State, seed int64, bonus BonusDto) {
	log := logger.WithGameContext(matchID, "")

	opts := referee.Options{
		GameState:    &state,
		Seed:         seed,
		AgentTimeout: h.agentTimeout,
		EventBus:     h.eventBus,
		GameID:       matchID,
		Bonus:        referee.BonusRules{RWB: bonus.RWB, SEY: bonus.SEY},
	}
	if h.observers != nil {
		opts.Observers = append(opts.Observers, h.observers(matchID))
	}

	result := referee.ExecuteGame(context.Background(), agents, opts)

	match, err := h.repo.Get(context.Background(), matchID)
	if err != nil {
		log.Error("match vanished before outcome could be recorded", zap.Error(err))
		return
	}
	match.Status = repository.StatusOver
	match.Winners = result.Winners
	match.Kicked = result.Kicked
	if err := h.repo.Update(context.Background(), match); err != nil {
		log.Error("failed to record match outcome", zap.Error(err))
	}
}

// GetMatch handles GET /api/v1/matches/:id.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id := c.Param("id")
	match, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if _, ok := err.(*bazaarerrors.GameNotFoundError); ok {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, GetMatchResponse{Match: toMatchDto(match)})
}

// ListMatches handles GET /api/v1/matches, optionally filtered by
// ?status=running|over.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	status := repository.Status(c.Query("status"))
	matches, err := h.repo.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	dtos := make([]MatchDto, len(matches))
	for i, m := range matches {
		dtos[i] = toMatchDto(m)
	}
	c.JSON(http.StatusOK, ListMatchesResponse{Matches: dtos})
}

func toMatchDto(m *repository.Match) MatchDto {
	return MatchDto{
		ID:      m.ID,
		Status:  string(m.Status),
		Actors:  m.Actors,
		Winners: m.Winners,
		Kicked:  m.Kicked,
	}
}
