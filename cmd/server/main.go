package main

import (
	"context"
	"log"
	"net/http"

	"bazaar/internal/config"
	httpHandler "bazaar/internal/delivery/http"
	"bazaar/internal/delivery/websocket"
	"bazaar/internal/events"
	"bazaar/internal/logger"
	"bazaar/internal/repository"

	"github.com/gin-gonic/gin"
)

func main() {
	logLevel := config.LogLevelFromEnv()
	if err := logger.Init(&logLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Shutdown()

	eventBus := events.NewInMemoryEventBus()
	matchRepo := repository.NewInMemoryMatchRepository(eventBus)

	hub := websocket.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	matchHandler := httpHandler.NewMatchHandler(matchRepo, eventBus, hub.Observer)

	router := httpHandler.SetupRouter(matchHandler, []string{config.AllowedOriginFromEnv()})

	router.GET("/ws/:id", func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request, c.Param("id"))
	})

	port := config.PortFromEnv()

	log.Printf("bazaar referee server starting on port %s", port)
	log.Printf("health check available at: http://localhost:%s/api/v1/health", port)
	log.Printf("websocket endpoint available at: ws://localhost:%s/ws/:id", port)

	if err := router.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed to start: %v", err)
	}
}
