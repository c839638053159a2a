// Package websocket fans out live match state to connected observers,
// grounded on the teacher's internal/delivery/websocket/hub.go: a
// register/unregister channel pair feeding a mutex-guarded connection map,
// with broadcast done by a direct method call, here grouped by match ID
// instead of by Terraforming Mars game ID.
package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"bazaar/internal/game"
	"bazaar/internal/logger"
	"bazaar/internal/observer"
	"bazaar/internal/wire"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Observers are read-only spectators; origin is checked by the
		// surrounding CORS middleware on the HTTP routes, not here.
		return true
	},
}

// connection is one upgraded client socket subscribed to a single match.
type connection struct {
	id      string
	matchID string
	conn    *websocket.Conn
	send    chan []byte
}

// Hub maintains live connections grouped by match ID. Observer returns a
// per-match observer.Observer the referee can register directly.
type Hub struct {
	mu         sync.RWMutex
	byMatch    map[string]map[*connection]bool
	register   chan *connection
	unregister chan *connection
}

// NewHub builds an empty hub. Call Run in a goroutine before serving
// connections.
func NewHub() *Hub {
	return &Hub{
		byMatch:    make(map[string]map[*connection]bool),
		register:   make(chan *connection),
		unregister: make(chan *connection),
	}
}

// Run processes register/unregister requests until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.mu.Lock()
			if h.byMatch[c.matchID] == nil {
				h.byMatch[c.matchID] = make(map[*connection]bool)
			}
			h.byMatch[c.matchID][c] = true
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.byMatch[c.matchID]; ok {
				if _, present := conns[c]; present {
					delete(conns, c)
					close(c.send)
					if len(conns) == 0 {
						delete(h.byMatch, c.matchID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// ServeWS upgrades r into a subscriber of matchID's state updates.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, matchID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithGameContext(matchID, "").Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &connection{
		id:      uuid.New().String(),
		matchID: matchID,
		conn:    conn,
		send:    make(chan []byte, 16),
	}
	h.register <- c

	go h.writePump(c)
	go h.readPump(c)
}

// readPump discards inbound client traffic (observers are read-only) and
// exists only to detect the connection closing.
func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *connection) {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// Observer returns an observer.Observer bound to matchID: the referee
// registers one of these per match so every subsequent Update/GameOver
// call fans out only to that match's subscribers.
func (h *Hub) Observer(matchID string) observer.Observer {
	return &matchObserver{hub: h, matchID: matchID}
}

// matchObserver adapts Hub's per-match broadcast to the referee-facing
// observer.Observer interface, which carries no match identity of its own.
type matchObserver struct {
	hub     *Hub
	matchID string
}

func (m *matchObserver) Update(state game.State) error {
	data, err := wire.MarshalGameState(state)
	if err != nil {
		return err
	}
	m.hub.broadcast(m.matchID, data)
	return nil
}

func (m *matchObserver) GameOver(winners, kicked []string) error {
	payload := struct {
		Winners []string `json:"winners"`
		Kicked  []string `json:"kicked"`
	}{Winners: winners, Kicked: kicked}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	m.hub.broadcast(m.matchID, data)
	return nil
}

func (h *Hub) broadcast(matchID string, data []byte) {
	h.mu.RLock()
	conns := h.byMatch[matchID]
	h.mu.RUnlock()

	for c := range conns {
		select {
		case c.send <- data:
		default:
			logger.WithGameContext(matchID, "").Warn("dropping slow websocket subscriber", zap.String("connection_id", c.id))
		}
	}
}
