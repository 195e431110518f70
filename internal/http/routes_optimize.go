package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-optimizer/internal/repository"
	"github.com/guttosm/container-optimizer/internal/service"
)

// OptimizeRoutes handles optimization-related route registration.
type OptimizeRoutes struct {
	handler        *Handler
	configsHandler *ConfigsHandler
	runsHandler    *RunsHandler
}

// NewOptimizeRoutes creates a new OptimizeRoutes instance.
func NewOptimizeRoutes(optimizeService service.OptimizeService, configsService service.ConfigsService, runs repository.RunsRepositoryInterface, opts ...HandlerOption) *OptimizeRoutes {
	handler := NewHandler(optimizeService, configsService, opts...)

	var configsHandler *ConfigsHandler
	if configsService != nil {
		configsHandler = NewConfigsHandler(configsService, optimizeService, handler)
	}

	var runsHandler *RunsHandler
	if runs != nil {
		runsHandler = NewRunsHandler(runs)
	}

	return &OptimizeRoutes{
		handler:        handler,
		configsHandler: configsHandler,
		runsHandler:    runsHandler,
	}
}

// RegisterPublicRoutes registers the optimization routes.
func (r *OptimizeRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", r.handler.Optimize)

	if r.configsHandler != nil {
		rg.GET("/config", r.configsHandler.GetActiveConfig)
		rg.PUT("/config", r.configsHandler.UpdateConfig)
		rg.GET("/config/history", r.configsHandler.ListConfigs)
	}

	if r.runsHandler != nil {
		rg.GET("/runs", r.runsHandler.ListRuns)
	}
}

// GetHandler returns the underlying optimize handler.
func (r *OptimizeRoutes) GetHandler() *Handler {
	return r.handler
}
