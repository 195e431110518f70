// Package app provides service initialization.
package app

import (
	"github.com/guttosm/container-optimizer/config"
	"github.com/guttosm/container-optimizer/internal/optimizer"
	"github.com/guttosm/container-optimizer/internal/service"
	"github.com/guttosm/container-optimizer/internal/solver"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Engine          optimizer.Engine
	OptimizeService service.OptimizeService
	ConfigsService  service.ConfigsService
}

// InitializeServices initializes the optimization engine and business services.
// Database-backed services are only wired when dbComponents is non-nil.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	var engineOpts []optimizer.Option
	if cfg.Engine.SolverTimeLimit > 0 {
		engineOpts = append(engineOpts, optimizer.WithTimeLimit(cfg.Engine.SolverTimeLimit))
	}
	if cfg.Engine.SolverMaxNodes > 0 {
		engineOpts = append(engineOpts, optimizer.WithSolver(
			solver.NewBranchAndBound(solver.WithMaxNodes(cfg.Engine.SolverMaxNodes)),
		))
	}
	engine := optimizer.NewEngineService(engineOpts...)

	var optimizeOpts []service.OptimizeOption
	if cfg.Cache.Size > 0 {
		optimizeOpts = append(optimizeOpts, service.WithResultCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	var configsService service.ConfigsService
	if dbComponents != nil {
		if dbComponents.RunsRepo != nil {
			optimizeOpts = append(optimizeOpts, service.WithRunsRepository(dbComponents.RunsRepo))
		}
		if dbComponents.ConfigsRepo != nil {
			configsService = service.NewConfigsService(dbComponents.ConfigsRepo)
		}
	}

	optimizeService := service.NewOptimizeService(engine, optimizeOpts...)

	return &ServiceComponents{
		Engine:          engine,
		OptimizeService: optimizeService,
		ConfigsService:  configsService,
	}
}
