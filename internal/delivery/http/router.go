package http

import (
	"bazaar/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the match handler onto a fresh gin engine, grounded on
// the teacher's SetupRouter but using gin's own route groups in place of
// gorilla/mux subrouters.
func SetupRouter(matchHandler *MatchHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ZapRecovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ZapLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api/v1")
	api.GET("/health", matchHandler.HealthCheck)

	matches := api.Group("/matches")
	matches.POST("", matchHandler.CreateMatch)
	matches.GET("", matchHandler.ListMatches)
	matches.GET("/:id", matchHandler.GetMatch)

	return router
}
