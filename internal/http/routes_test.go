//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/container-optimizer/internal/mocks"
	"github.com/guttosm/container-optimizer/internal/optimizer"
	"github.com/guttosm/container-optimizer/internal/service"
)

func newOptimizeService() service.OptimizeService {
	return service.NewOptimizeService(optimizer.NewEngineService())
}

func TestNewOptimizeRoutes(t *testing.T) {
	routes := NewOptimizeRoutes(newOptimizeService(), nil, nil)

	assert.NotNil(t, routes)
	assert.NotNil(t, routes.handler)
	assert.Nil(t, routes.configsHandler, "no configs service, no config routes")
	assert.Nil(t, routes.runsHandler, "no runs repository, no runs routes")
}

func TestOptimizeRoutes_RegisterPublicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	configsRepo := new(mocks.MockConfigsRepositoryInterface)
	configsService := service.NewConfigsService(configsRepo)
	runsRepo := new(mocks.MockRunsRepositoryInterface)

	routes := NewOptimizeRoutes(newOptimizeService(), configsService, runsRepo)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	assert.True(t, registered["POST /api/optimize"])
	assert.True(t, registered["GET /api/config"])
	assert.True(t, registered["PUT /api/config"])
	assert.True(t, registered["GET /api/config/history"])
	assert.True(t, registered["GET /api/runs"])
}

func TestOptimizeRoutes_WithoutConfigsService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	routes := NewOptimizeRoutes(newOptimizeService(), nil, nil)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	assert.True(t, registered["POST /api/optimize"])
	assert.False(t, registered["GET /api/config"])
	assert.False(t, registered["GET /api/runs"])
}

func TestOptimizeRoutes_GetHandler(t *testing.T) {
	routes := NewOptimizeRoutes(newOptimizeService(), nil, nil)

	assert.Same(t, routes.handler, routes.GetHandler())
}

func TestRunsHandler_NotEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewRunsHandler(nil)
	router := gin.New()
	router.GET("/api/runs", handler.ListRuns)

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunsHandler_RejectsBadQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	runsRepo := new(mocks.MockRunsRepositoryInterface)
	handler := NewRunsHandler(runsRepo)
	router := gin.New()
	router.GET("/api/runs", handler.ListRuns)

	tests := []struct {
		name  string
		query string
	}{
		{name: "negative limit", query: "limit=-5"},
		{name: "non-numeric skip", query: "skip=abc"},
		{name: "bad start time", query: "start_time=yesterday"},
		{name: "bad end time", query: "end_time=2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/runs?"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
