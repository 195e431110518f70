package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-optimizer/internal/domain/dto"
	"github.com/guttosm/container-optimizer/internal/service"
)

// ConfigsHandler provides HTTP handlers for optimization config preset routes.
type ConfigsHandler struct {
	configsService  service.ConfigsService
	optimizeService service.OptimizeService
	optimizeHandler *Handler
}

// NewConfigsHandler creates a new ConfigsHandler instance.
func NewConfigsHandler(configsService service.ConfigsService, optimizeService service.OptimizeService, optimizeHandler *Handler) *ConfigsHandler {
	return &ConfigsHandler{
		configsService:  configsService,
		optimizeService: optimizeService,
		optimizeHandler: optimizeHandler,
	}
}

// GetActiveConfig handles GET /api/config requests. It returns the active
// configuration preset, or 404 when none is stored.
func (h *ConfigsHandler) GetActiveConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	preset, err := h.configsService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, "failed to load active config", err)
		return
	}

	if preset == nil {
		builder.Error(http.StatusNotFound, "no active config preset", nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"name":       preset.Name,
		"config":     preset.Config,
		"version":    preset.Version,
		"created_at": preset.CreatedAt,
		"updated_at": preset.UpdatedAt,
	})
}

// UpdateConfig handles PUT /api/config requests. It stores a new preset,
// makes it active and invalidates the caches that depend on it.
func (h *ConfigsHandler) UpdateConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	name := c.Query("name")
	if name == "" {
		name = "default"
	}

	preset, err := h.configsService.Create(c.Request.Context(), name, req.Config, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "failed to store config", err)
		return
	}

	// Cached results and the cached active config are stale now.
	if h.optimizeService != nil {
		h.optimizeService.InvalidateCache()
	}
	if h.optimizeHandler != nil {
		h.optimizeHandler.InvalidateConfigCache()
	}

	builder.SuccessOK(map[string]interface{}{
		"name":       preset.Name,
		"config":     preset.Config,
		"version":    preset.Version,
		"created_at": preset.CreatedAt,
		"updated_at": preset.UpdatedAt,
	})
}

// ListConfigs handles GET /api/config/history requests.
func (h *ConfigsHandler) ListConfigs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	presets, err := h.configsService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "failed to list configs", err)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"configs": presets,
		"count":   len(presets),
	})
}
