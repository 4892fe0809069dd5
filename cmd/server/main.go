package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"gopredict/internal/app"
	"gopredict/internal/config"
	"gopredict/internal/handler"
	"gopredict/internal/predictor"
	internalRedis "gopredict/internal/redis"
	"gopredict/internal/repository/postgres"
	"gopredict/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(ctx, db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(ctx context.Context, db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	locationCatalog := internalRedis.NewLocationCatalog(redisClient)
	cacheStore := internalRedis.NewCacheStore(redisClient)
	lockStore := internalRedis.NewDeleteLockStore(redisClient)

	if err := app.SeedLocationCatalog(ctx, locationCatalog); err != nil {
		log.Fatalf("failed to seed location catalog: %v", err)
	}
	log.Println("Location catalog seeded")

	// Initialize repositories.
	tripRepo := postgres.NewTripRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	// Initialize services.
	notificationService := service.NewNotificationService()
	predictorClient := predictor.NewClient(cfg.Predictor.BaseURL, cfg.Predictor.Timeout)
	predictionService := service.NewPredictionService(predictorClient, cacheStore, notificationService)
	historyService := service.NewHistoryService(tripRepo, service.NewDeletionCoordinator(), lockStore, notificationService)
	profileService := service.NewProfileService(profileRepo)

	// Initialize handlers.
	predictHandler := handler.NewPredictHandler(predictionService, historyService)
	plannerHandler := handler.NewPlannerHandler()
	locationHandler := handler.NewLocationHandler(locationCatalog)
	tripHandler := handler.NewTripHandler(historyService)
	profileHandler := handler.NewProfileHandler(profileService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		PredictHandler:  predictHandler,
		PlannerHandler:  plannerHandler,
		LocationHandler: locationHandler,
		TripHandler:     tripHandler,
		ProfileHandler:  profileHandler,
		RedisClient:     redisClient,
		NewRelicApp:     nrApp,
		JWTSecret:       []byte(cfg.Auth.JWTSecret),
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
