package cache

import "github.com/guttosm/container-optimizer/internal/domain/model"

// Cache defines the interface for result cache operations. Keys are request
// digests: the engine is deterministic, so identical inputs may share a
// cached result.
type Cache interface {
	Get(key string) (model.OptimizationResult, bool)
	Set(key string, value model.OptimizationResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
