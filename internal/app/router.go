// Package app provides router configuration.
package app

import (
	"github.com/guttosm/container-optimizer/config"
	"github.com/guttosm/container-optimizer/internal/http"
	"github.com/guttosm/container-optimizer/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.ConfigsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_configs", dbComponents.ConfigsCircuitBreaker)
		}
		if dbComponents.RunsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_runs", dbComponents.RunsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		RequestTimeout:  cfg.Server.RequestTimeout,
		APIKeys:         cfg.Auth.APIKeys,
		CORSOrigins:     cfg.Server.CORSOrigins,
		DefaultConfig:   cfg.Engine.Defaults,
		LoggingService:  loggingService,
		ConfigsService:  services.ConfigsService,
		OptimizeService: services.OptimizeService,
	}
	if dbComponents != nil {
		routerCfg.RunsRepository = dbComponents.RunsRepo
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
