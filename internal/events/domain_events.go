package events

// Event type constants published by the referee and repository.
const (
	EventTypeGameCreated  = "game.created"
	EventTypeTurnAdvanced = "turn.advanced"
	EventTypePlayerKicked = "player.kicked"
	EventTypeGameOver     = "game.over"
)

// GameCreatedEvent is published when a new game is registered in the repository.
type GameCreatedEvent struct {
	BaseEvent
}

// GameCreatedPayload carries the actor names present at game creation.
type GameCreatedPayload struct {
	GameID     string   `json:"gameId"`
	ActorNames []string `json:"actorNames"`
}

// NewGameCreatedEvent builds a GameCreatedEvent.
func NewGameCreatedEvent(gameID string, actorNames []string) *GameCreatedEvent {
	return &GameCreatedEvent{
		BaseEvent: NewBaseEvent(EventTypeGameCreated, gameID, GameCreatedPayload{
			GameID:     gameID,
			ActorNames: actorNames,
		}),
	}
}

// TurnAdvancedEvent is published whenever the referee rotates the active player.
type TurnAdvancedEvent struct {
	BaseEvent
}

// TurnAdvancedPayload names the player who is now active and the phase entered.
type TurnAdvancedPayload struct {
	GameID       string `json:"gameId"`
	ActivePlayer string `json:"activePlayer"`
	Phase        string `json:"phase"`
}

// NewTurnAdvancedEvent builds a TurnAdvancedEvent.
func NewTurnAdvancedEvent(gameID, activePlayer, phase string) *TurnAdvancedEvent {
	return &TurnAdvancedEvent{
		BaseEvent: NewBaseEvent(EventTypeTurnAdvanced, gameID, TurnAdvancedPayload{
			GameID:       gameID,
			ActivePlayer: activePlayer,
			Phase:        phase,
		}),
	}
}

// PlayerKickedEvent is published when the referee removes a faulting or
// cheating player from the game.
type PlayerKickedEvent struct {
	BaseEvent
}

// PlayerKickedPayload records who was kicked and why.
type PlayerKickedPayload struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
	Reason   string `json:"reason"`
}

// NewPlayerKickedEvent builds a PlayerKickedEvent.
func NewPlayerKickedEvent(gameID, playerID, reason string) *PlayerKickedEvent {
	return &PlayerKickedEvent{
		BaseEvent: NewBaseEvent(EventTypePlayerKicked, gameID, PlayerKickedPayload{
			GameID:   gameID,
			PlayerID: playerID,
			Reason:   reason,
		}),
	}
}

// GameOverEvent is published once the referee reaches its terminal state.
type GameOverEvent struct {
	BaseEvent
}

// GameOverPayload carries the final winners and kicked actor names, both
// sorted lexicographically as required by the driver entry point contract.
type GameOverPayload struct {
	GameID  string   `json:"gameId"`
	Winners []string `json:"winners"`
	Kicked  []string `json:"kicked"`
}

// NewGameOverEvent builds a GameOverEvent.
func NewGameOverEvent(gameID string, winners, kicked []string) *GameOverEvent {
	return &GameOverEvent{
		BaseEvent: NewBaseEvent(EventTypeGameOver, gameID, GameOverPayload{
			GameID:  gameID,
			Winners: winners,
			Kicked:  kicked,
		}),
	}
}
