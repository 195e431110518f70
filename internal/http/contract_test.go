//go:build contract

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/container-optimizer/internal/domain/dto"
	"github.com/guttosm/container-optimizer/internal/middleware"
	"github.com/guttosm/container-optimizer/internal/optimizer"
	"github.com/guttosm/container-optimizer/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contractRouter() *gin.Engine {
	optimizeService := service.NewOptimizeService(optimizer.NewEngineService())
	handler := NewHandler(optimizeService, nil)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.ErrorHandler())
	NewHealthHandler().Register(router)
	api := router.Group("/api")
	api.POST("/optimize", handler.Optimize)
	return router
}

const contractBody = `{
	"products": [{
		"SKU": "WIDGET-01",
		"Description": "Boxed widgets",
		"BoxLength_m": 1, "BoxWidth_m": 1, "BoxHeight_m": 1,
		"WeightPerBox_kg": 100,
		"AvailableStock": 0,
		"SalesPerDay": 1,
		"CoverageDays": 9,
		"ProfitPerBox": 10,
		"CostPerBox": 50,
		"LeadTimeDays": 1
	}],
	"config": {
		"CONTAINER_VOLUME_M3": 66, "CONTAINER_MAX_WEIGHT_KG": 26000,
		"AVAILABLE_BUDGET": 50000, "GLOBAL_LEAD_TIME_DAYS": 30,
		"w_profit": 0.5, "w_density": 0.3, "w_velocity": 0.2
	}
}`

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	router := contractRouter()

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "POST /api/optimize - Success 200",
			method:         http.MethodPost,
			path:           "/api/optimize",
			body:           contractBody,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
				assert.NotZero(t, resp.Timestamp, "Response must include timestamp")
				assert.NotNil(t, resp.Data, "Response must include data")

				result, ok := resp.Data.(map[string]interface{})
				require.True(t, ok, "Data must be OptimizationResult")

				for _, key := range []string{
					"status", "totalBoxes", "totalVolume_m3", "volumeUtilization",
					"totalWeight_kg", "weightUtilization", "totalCost",
					"budgetUtilization", "totalProfit", "totalScore", "selectedItems",
				} {
					assert.Contains(t, result, key)
				}

				assert.Equal(t, "Optimal", result["status"])

				items, ok := result["selectedItems"].([]interface{})
				require.True(t, ok)
				require.NotEmpty(t, items)

				for _, itemInterface := range items {
					item, ok := itemInterface.(map[string]interface{})
					require.True(t, ok)
					for _, key := range []string{
						"SKU", "SelectedQty", "VolumeUsed_m3", "WeightUsed_kg",
						"TotalCost", "TotalProfit", "Score", "OrderQty",
					} {
						assert.Contains(t, item, key)
					}
				}
			},
		},
		{
			name:           "POST /api/optimize - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/optimize",
			body:           `invalid json`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "POST /api/optimize - Error 400 Invalid Product",
			method:         http.MethodPost,
			path:           "/api/optimize",
			body:           `{"products": [{"SKU": "A", "BoxLength_m": -1, "BoxWidth_m": 1, "BoxHeight_m": 1, "WeightPerBox_kg": 1, "SalesPerDay": 1, "CoverageDays": 5}]}`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}

// TestAPI_Headers validates response header conventions.
func TestAPI_Headers(t *testing.T) {
	router := contractRouter()

	t.Run("X-Request-ID is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewBufferString(contractBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", "contract-test-id")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "contract-test-id", w.Header().Get("X-Request-ID"))

		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "contract-test-id", resp.RequestID)
	})

	t.Run("X-Request-ID is generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
