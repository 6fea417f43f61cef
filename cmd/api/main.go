package main

// @title Station API
// @version 1.0.0
// @description Справочник станций, линий и видов поездов железных дорог Японии.
// @description
// @description Основные возможности:
// @description - Станции по идентификатору, группе, линии, координатам и названию
// @description - Линии станции и компании
// @description - Виды поездов с составными названиями для сквозного сообщения
// @description - Маршрут между двумя станциями по общей линии

// @contact.name API Support

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

	_ "github.com/station-microservice/docs"
	"github.com/station-microservice/internal/config"
	httpDelivery "github.com/station-microservice/internal/delivery/http"
	"github.com/station-microservice/internal/delivery/http/handler"
	"github.com/station-microservice/internal/naming"
	"github.com/station-microservice/internal/pkg/logger"
	"github.com/station-microservice/internal/repository/cache"
	"github.com/station-microservice/internal/repository/postgres"
	"github.com/station-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Station API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Int64("excluded_line_id", cfg.Dataset.ExcludedLineID),
		zap.Int64s("national_rail_company_ids", cfg.Dataset.NationalRailCompanyIDs),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		cancel()
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	cancel()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis (только если включён кеш ответов)
	var redisClient *cache.Redis
	health := map[string]httpDelivery.HealthChecker{
		"postgres": db,
		"redis":    nil,
	}
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		health["redis"] = redisClient
	}

	// 5. Initialize Repositories
	repos := usecase.Repositories{
		Stations:   postgres.NewStationRepository(db, cfg.Dataset.ExcludedLineID),
		Lines:      postgres.NewLineRepository(db, cfg.Dataset.ExcludedLineID),
		Companies:  postgres.NewCompanyRepository(db),
		TrainTypes: postgres.NewTrainTypeRepository(db, cfg.Dataset.ExcludedLineID),
	}

	var responseCache *usecase.ResponseCache
	if redisClient != nil {
		responseCache = usecase.NewResponseCache(
			cache.NewCacheRepository(redisClient),
			cfg.Cache.ResponseTTL,
			cfg.Cache.Enabled,
			log,
		)
	}

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	composer := naming.NewComposer(cfg.Dataset.NationalRailCompanyIDs)

	stationUC := usecase.NewStationUseCase(repos, composer, responseCache, log)
	lineUC := usecase.NewLineUseCase(repos, responseCache, log)
	trainTypeUC := usecase.NewTrainTypeUseCase(repos, composer, responseCache, log)
	pathUC := usecase.NewPathUseCase(repos, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		httpDelivery.Handlers{
			Station:   handler.NewStationHandler(stationUC, log),
			Line:      handler.NewLineHandler(lineUC, log),
			TrainType: handler.NewTrainTypeHandler(trainTypeUC, log),
			Path:      handler.NewPathHandler(pathUC, log),
		},
		health,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
