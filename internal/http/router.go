package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/guttosm/container-optimizer/internal/domain/model"
	"github.com/guttosm/container-optimizer/internal/metrics"
	"github.com/guttosm/container-optimizer/internal/middleware"
	"github.com/guttosm/container-optimizer/internal/repository"
	"github.com/guttosm/container-optimizer/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit       int
	RateWindow      time.Duration
	RequestTimeout  time.Duration
	APIKeys         map[string]bool
	CORSOrigins     []string
	DefaultConfig   model.OptimizationConfig
	LoggingService  service.LoggingService
	ConfigsService  service.ConfigsService
	OptimizeService service.OptimizeService
	RunsRepository  repository.RunsRepositoryInterface
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 60 * time.Second,
		DefaultConfig:  model.DefaultOptimizationConfig(),
	}
}

// NewRouter creates and configures the Gin router for the optimizer service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)

	// Infrastructure routes (health, metrics)
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	registerOptimizeRoutes(api, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	// CORS configuration
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "accept", "Cache-Control", "X-Requested-With", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	// A request timeout longer than the solver's own time limit lets the
	// engine answer Undefined before the gateway cuts the connection.
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
}

// registerOptimizeRoutes registers the optimization API routes.
func registerOptimizeRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.OptimizeService == nil {
		return
	}
	var opts []HandlerOption
	if cfg.DefaultConfig.ContainerVolumeM3 > 0 {
		opts = append(opts, WithDefaultConfig(cfg.DefaultConfig))
	}
	routes := NewOptimizeRoutes(cfg.OptimizeService, cfg.ConfigsService, cfg.RunsRepository, opts...)
	routes.RegisterPublicRoutes(api)
}
