package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/guttosm/container-optimizer/internal/domain/model"
	"github.com/guttosm/container-optimizer/internal/metrics"
	"github.com/guttosm/container-optimizer/internal/optimizer"
	"github.com/guttosm/container-optimizer/internal/repository"
	"github.com/guttosm/container-optimizer/internal/service/cache"
)

// runRecordTimeout bounds the detached write of a run history record.
const runRecordTimeout = 5 * time.Second

// OptimizeService defines the interface for optimization operations.
type OptimizeService interface {
	Optimize(ctx context.Context, requestID string, products []model.Product, cfg model.OptimizationConfig) model.OptimizationResult
	// InvalidateCache clears the result cache (useful when presets change).
	InvalidateCache()
}

// OptimizeOption configures an OptimizeServiceImpl.
type OptimizeOption func(*OptimizeServiceImpl)

// OptimizeServiceImpl implements OptimizeService around the engine, with
// optional result caching and run history recording.
type OptimizeServiceImpl struct {
	engine optimizer.Engine
	cache  cache.Cache
	runs   repository.RunsRepositoryInterface
}

// NewOptimizeService creates a new optimize service with the given options.
func NewOptimizeService(engine optimizer.Engine, opts ...OptimizeOption) *OptimizeServiceImpl {
	s := &OptimizeServiceImpl{
		engine: engine,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithResultCache enables result caching with the specified capacity and TTL.
// The engine is deterministic, so identical requests can share a result.
func WithResultCache(capacity int, ttl time.Duration) OptimizeOption {
	return func(s *OptimizeServiceImpl) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) OptimizeOption {
	return func(s *OptimizeServiceImpl) {
		s.cache = c
	}
}

// WithRunsRepository enables run history recording.
func WithRunsRepository(runs repository.RunsRepositoryInterface) OptimizeOption {
	return func(s *OptimizeServiceImpl) {
		s.runs = runs
	}
}

// Optimize runs the engine for one request, serving repeats from the cache
// and recording the run asynchronously when history is enabled.
func (s *OptimizeServiceImpl) Optimize(ctx context.Context, requestID string, products []model.Product, cfg model.OptimizationConfig) model.OptimizationResult {
	key := ""
	if s.cache != nil {
		key = requestDigest(products, cfg)
		if key != "" {
			if result, ok := s.cache.Get(key); ok {
				return result
			}
		}
	}

	result, stats := s.engine.Optimize(ctx, products, cfg)

	metrics.RecordOptimization(string(result.Status), stats.Duration, stats.SolverNodes)

	if s.cache != nil && key != "" && result.Status == model.StatusOptimal {
		s.cache.Set(key, result)
	}

	if s.runs != nil {
		s.recordRun(requestID, len(products), cfg, result, stats)
	}

	return result
}

// recordRun persists the run record detached from the request context so a
// slow or failing database never delays the response.
func (s *OptimizeServiceImpl) recordRun(requestID string, productCount int, cfg model.OptimizationConfig, result model.OptimizationResult, stats optimizer.RunStats) {
	run := &repository.OptimizationRun{
		RequestID:    requestID,
		ProductCount: productCount,
		Config:       cfg,
		Result:       result,
		Status:       string(result.Status),
		DurationMs:   stats.Duration.Milliseconds(),
		SolverNodes:  stats.SolverNodes,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), runRecordTimeout)
		defer cancel()
		_ = s.runs.Create(ctx, run)
	}()
}

// InvalidateCache clears the result cache.
func (s *OptimizeServiceImpl) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// requestDigest returns a stable digest of the request payload. Struct field
// order makes the JSON encoding deterministic for identical inputs.
func requestDigest(products []model.Product, cfg model.OptimizationConfig) string {
	payload := struct {
		Products []model.Product          `json:"products"`
		Config   model.OptimizationConfig `json:"config"`
	}{Products: products, Config: cfg}

	raw, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
