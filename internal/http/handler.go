package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-optimizer/internal/domain/dto"
	"github.com/guttosm/container-optimizer/internal/domain/model"
	"github.com/guttosm/container-optimizer/internal/metrics"
	"github.com/guttosm/container-optimizer/internal/middleware"
	"github.com/guttosm/container-optimizer/internal/service"
)

// activeConfigCache provides thread-safe caching of the active config preset.
type activeConfigCache struct {
	cfg       atomic.Value // holds model.OptimizationConfig
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newActiveConfigCache creates a new config cache with the given TTL.
func newActiveConfigCache(ttl time.Duration) *activeConfigCache {
	c := &activeConfigCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached config if valid, or nil if the cache is expired/empty.
func (c *activeConfigCache) get() *model.OptimizationConfig {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if cfg := c.cfg.Load(); cfg != nil {
				if v, ok := cfg.(model.OptimizationConfig); ok {
					return &v
				}
			}
		}
	}
	return nil
}

// set stores a config in the cache with TTL.
func (c *activeConfigCache) set(cfg model.OptimizationConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.cfg.Store(cfg)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *activeConfigCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for container optimization routes.
type Handler struct {
	optimizeService service.OptimizeService
	configsService  service.ConfigsService
	defaults        model.OptimizationConfig
	configCache     *activeConfigCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithConfigCacheTTL sets the TTL for active config caching.
func WithConfigCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.configCache = newActiveConfigCache(ttl)
	}
}

// WithDefaultConfig sets the fallback configuration applied when a request
// carries no inline config and no preset is active.
func WithDefaultConfig(cfg model.OptimizationConfig) HandlerOption {
	return func(h *Handler) {
		h.defaults = cfg
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizeService service.OptimizeService, configsService service.ConfigsService, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizeService: optimizeService,
		configsService:  configsService,
		defaults:        model.DefaultOptimizationConfig(),
		configCache:     newActiveConfigCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// resolveConfig returns the effective configuration for a request without an
// inline config: the active preset when one exists, the defaults otherwise.
func (h *Handler) resolveConfig(ctx context.Context) model.OptimizationConfig {
	if cfg := h.configCache.get(); cfg != nil {
		return *cfg
	}

	if h.configsService == nil {
		return h.defaults
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	preset, err := h.configsService.GetActive(ctx)
	if err != nil || preset == nil {
		return h.defaults
	}

	h.configCache.set(preset.Config)
	return preset.Config
}

// InvalidateConfigCache invalidates the active config cache.
// Call this when the active preset changes.
func (h *Handler) InvalidateConfigCache() {
	h.configCache.invalidate()
}

// Optimize handles POST /api/optimize requests. It validates the product
// catalog, resolves the effective configuration and runs the load plan
// optimization. The terminal solver status travels inside the result body,
// so every completed run answers 200.
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordValidationFailure()
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	var cfg model.OptimizationConfig
	if req.Config != nil {
		cfg = *req.Config
	} else {
		cfg = h.resolveConfig(c.Request.Context())
	}

	requestID := middleware.GetRequestID(c)
	result := h.optimizeService.Optimize(c.Request.Context(), requestID, req.Products, cfg)

	builder.SuccessOK(result)
}
