package main

// @title Trip Planner Service API
// @version 1.0.0
// @description Matches travellers with local trip planners and manages a personal itinerary.
// @description
// @description Features:
// @description - Cascading planner matching that never returns an empty list
// @description - Travel requests and messages with a local ledger fallback when the remote backend is down
// @description - Itinerary editing and route optimisation with travel estimates

// @contact.name API Support
// @contact.email support@trip-planner.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	_ "github.com/trip-planner-service/docs"
	"github.com/trip-planner-service/internal/config"
	httpDelivery "github.com/trip-planner-service/internal/delivery/http"
	"github.com/trip-planner-service/internal/delivery/http/handler"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/logger"
	"github.com/trip-planner-service/internal/repository/cache"
	firestoreRepo "github.com/trip-planner-service/internal/repository/firestore"
	"github.com/trip-planner-service/internal/repository/local"
	redisRepo "github.com/trip-planner-service/internal/repository/redis"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/worker"
	"github.com/trip-planner-service/internal/worker/health"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Trip Planner Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("remote_configured", cfg.RemoteConfigured()),
		zap.String("route_strategy", cfg.Itinerary.Strategy),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 4. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	// 5. Connect to the remote backend when credentials are present
	var (
		firestoreClient *firestore.Client
		remote          repository.RemoteBackend
	)
	if cfg.RemoteConfigured() {
		firestoreClient, err = firestoreRepo.NewClient(ctx, &cfg.Firebase, log)
		if err != nil {
			log.Warn("Remote backend unavailable, running in local-only mode", zap.Error(err))
		} else {
			remote = firestoreRepo.NewRemoteBackend(firestoreClient, cfg.Firebase.Timeout, log)
		}
	} else {
		log.Info("Remote backend not configured, running in local-only mode")
	}

	// 6. Initialize Repositories
	kvRepo := cache.NewKVRepository(redisClient.Client(), log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	plannerRepo, err := local.NewPlannerRepository(cfg.Dataset.PlannersFile, log)
	if err != nil {
		log.Fatal("Failed to load planner dataset", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	monitor := usecase.NewAvailabilityMonitor(remote, cfg.Health.MaxRetries, cfg.Firebase.Timeout, log)
	monitor.InitializeIfNeeded(ctx)

	matcher := usecase.NewCascadingMatcher(log)

	gateway := usecase.NewPlannerGateway(
		remote,
		monitor,
		matcher,
		plannerRepo,
		kvRepo,
		streamRepo,
		cfg.Ledger.StorageKey,
		cfg.Ledger.EventStream,
		log,
	)

	var sequencer usecase.RouteSequencer
	switch cfg.Itinerary.Strategy {
	case config.StrategyNearestNeighbor:
		sequencer = usecase.NewNearestNeighborSequencer()
	default:
		sequencer = usecase.NewAnchorSequencer()
	}

	itineraryStore := usecase.NewItineraryStore(
		kvRepo,
		sequencer,
		cfg.Itinerary.StorageKey,
		cfg.Itinerary.OptimizeDelay,
		log,
	)
	itineraryStore.Load(ctx)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	plannerHandler := handler.NewPlannerHandler(gateway, log)
	itineraryHandler := handler.NewItineraryHandler(itineraryStore, log)
	backendHandler := handler.NewBackendHandler(gateway, cfg.Health.ReconnectRateLimit, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		plannerHandler,
		itineraryHandler,
		backendHandler,
	)

	// 10. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	manager := worker.NewWorkerManager(log)
	if cfg.Health.Enabled && monitor.Configured() {
		manager.Register(health.NewBackendHealthWorker(monitor, cfg.Health.Interval, log))
	}
	manager.Start(workerCtx)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	stopWorkers()
	if err := manager.Stop(shutdownCtx); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	if firestoreClient != nil {
		if err := firestoreClient.Close(); err != nil {
			log.Error("Failed to close Firestore client", zap.Error(err))
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
