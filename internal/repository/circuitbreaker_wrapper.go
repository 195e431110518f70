// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/container-optimizer/internal/circuitbreaker"
	"github.com/guttosm/container-optimizer/internal/domain/model"
)

// ConfigsRepositoryWithCircuitBreaker wraps ConfigsRepository with circuit breaker protection.
type ConfigsRepositoryWithCircuitBreaker struct {
	repo           *ConfigsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewConfigsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewConfigsRepositoryWithCircuitBreaker(repo *ConfigsRepository, cb *circuitbreaker.CircuitBreaker) *ConfigsRepositoryWithCircuitBreaker {
	return &ConfigsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active preset with circuit breaker protection.
// When the circuit is open it returns nil so callers fall back to the
// request-supplied or default configuration.
func (r *ConfigsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*ConfigPreset, error) {
	var result *ConfigPreset
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create stores a new preset with circuit breaker protection.
func (r *ConfigsRepositoryWithCircuitBreaker) Create(ctx context.Context, name string, cfg model.OptimizationConfig, createdBy string) (*ConfigPreset, error) {
	var result *ConfigPreset
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, name, cfg, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates a preset with circuit breaker protection.
func (r *ConfigsRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, cfg model.OptimizationConfig, updatedBy string) (*ConfigPreset, error) {
	var result *ConfigPreset
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, cfg, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns presets with circuit breaker protection.
func (r *ConfigsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]ConfigPreset, error) {
	var result []ConfigPreset
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ConfigsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// RunsRepositoryWithCircuitBreaker wraps RunsRepository with circuit breaker protection.
type RunsRepositoryWithCircuitBreaker struct {
	repo           *RunsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRunsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRunsRepositoryWithCircuitBreaker(repo *RunsRepository, cb *circuitbreaker.CircuitBreaker) *RunsRepositoryWithCircuitBreaker {
	return &RunsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create records a run with circuit breaker protection. When the circuit is
// open the record is dropped; run history is non-critical.
func (r *RunsRepositoryWithCircuitBreaker) Create(ctx context.Context, run *OptimizationRun) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, run)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// List returns run records with circuit breaker protection.
func (r *RunsRepositoryWithCircuitBreaker) List(ctx context.Context, opts RunQueryOptions) ([]*OptimizationRun, error) {
	var result []*OptimizationRun
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the run record count with circuit breaker protection.
func (r *RunsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts RunQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RunsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If the circuit is open it silently fails; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If the circuit is open it silently fails; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
