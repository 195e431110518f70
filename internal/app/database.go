// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/container-optimizer/config"
	"github.com/guttosm/container-optimizer/internal/circuitbreaker"
	"github.com/guttosm/container-optimizer/internal/domain/model"
	"github.com/guttosm/container-optimizer/internal/repository"
	"github.com/guttosm/container-optimizer/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	ConfigsRepo           repository.ConfigsRepositoryInterface
	RunsRepo              repository.RunsRepositoryInterface
	LoggingService        service.LoggingService
	ConfigsCircuitBreaker *circuitbreaker.CircuitBreaker
	RunsCircuitBreaker    *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, defaultConfig model.OptimizationConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL indexes so logs and run history age out on their own
	logsTTLDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), logsTTLDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	runsTTLDays := int(cfg.RunsTTL.Hours() / 24)
	if err := db.SetRunsTTL(context.Background(), runsTTLDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set runs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	configsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-configs",
	})

	runsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-runs",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	configsRepo := repository.NewConfigsRepository(db)
	configsRepoWithCB := repository.NewConfigsRepositoryWithCircuitBreaker(configsRepo, configsCB)

	runsRepo := repository.NewRunsRepository(db)
	runsRepoWithCB := repository.NewRunsRepositoryWithCircuitBreaker(runsRepo, runsCB)

	// Seed a default config preset if none exists
	if err := initializeDefaultConfig(configsRepoWithCB, defaultConfig); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default config preset")
	}

	return &DatabaseComponents{
		ConfigsRepo:           configsRepoWithCB,
		RunsRepo:              runsRepoWithCB,
		LoggingService:        loggingService,
		ConfigsCircuitBreaker: configsCB,
		RunsCircuitBreaker:    runsCB,
		LogsCircuitBreaker:    logsCB,
	}
}

// initializeDefaultConfig creates a default config preset if none is active.
func initializeDefaultConfig(repo repository.ConfigsRepositoryInterface, defaultConfig model.OptimizationConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		if defaultConfig.ContainerVolumeM3 <= 0 {
			defaultConfig = model.DefaultOptimizationConfig()
		}
		if _, err := repo.Create(ctx, "default", defaultConfig, "system"); err != nil {
			return err
		}
		log.Info().
			Float64("container_volume_m3", defaultConfig.ContainerVolumeM3).
			Float64("container_max_weight_kg", defaultConfig.ContainerMaxWeightKg).
			Msg("Created default config preset")
	}

	return nil
}
