package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"gopredict/internal/handler"
	"gopredict/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	PredictHandler  *handler.PredictHandler
	PlannerHandler  *handler.PlannerHandler
	LocationHandler *handler.LocationHandler
	TripHandler     *handler.TripHandler
	ProfileHandler  *handler.ProfileHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
	JWTSecret       []byte
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Location catalog and planner evaluation are usable without an
		// account.
		v1.GET("/locations", deps.LocationHandler.List)

		planner := v1.Group("/planner")
		{
			planner.POST("/from", deps.PlannerHandler.SelectFrom)
			planner.POST("/to", deps.PlannerHandler.SelectTo)
		}

		// Predictions accept an optional credential: signed-in predictions
		// are recorded in the owner's history.
		v1.POST("/predictions", middleware.OptionalAuthenticate(deps.JWTSecret), deps.PredictHandler.Predict)

		// Trip history and profile require the credential.
		authed := v1.Group("", middleware.Authenticate(deps.JWTSecret))
		{
			trips := authed.Group("/trips")
			{
				trips.POST("", deps.TripHandler.Create)
				trips.GET("", deps.TripHandler.List)
				trips.POST("/:id/delete-request", deps.TripHandler.RequestDelete)
				trips.POST("/:id/delete-cancel", deps.TripHandler.CancelDelete)
				trips.DELETE("/:id", deps.TripHandler.ConfirmDelete)
			}

			profile := authed.Group("/profile")
			{
				profile.GET("", deps.ProfileHandler.Get)
				profile.PUT("", deps.ProfileHandler.Update)
			}
		}
	}

	return router
}
