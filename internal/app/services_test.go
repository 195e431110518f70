//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/container-optimizer/config"
	"github.com/guttosm/container-optimizer/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates services with default config",
			cfg:  config.Config{},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Engine)
				assert.NotNil(t, components.OptimizeService)
				assert.Nil(t, components.ConfigsService)
			},
		},
		{
			name: "creates services with result cache enabled",
			cfg: config.Config{
				Cache: config.CacheConfig{
					Size: 1000,
					TTL:  5 * time.Minute,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.OptimizeService)
			},
		},
		{
			name: "creates services with custom solver limits",
			cfg: config.Config{
				Engine: config.EngineConfig{
					SolverTimeLimit: 5 * time.Second,
					SolverMaxNodes:  500,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Engine)
			},
		},
		{
			name: "zero cache size disables cache",
			cfg: config.Config{
				Cache: config.CacheConfig{
					Size: 0,
					TTL:  5 * time.Minute,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.OptimizeService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg, nil)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestServiceComponents_Optimize(t *testing.T) {
	components := InitializeServices(config.Config{
		Cache: config.CacheConfig{
			Size: 100,
			TTL:  time.Minute,
		},
	}, nil)

	assert.NotNil(t, components.OptimizeService)

	products := []model.Product{
		{
			SKU:            "SKU-1",
			BoxLengthM:     1,
			BoxWidthM:      1,
			BoxHeightM:     1,
			WeightPerBoxKg: 10,
			SalesPerDay:    1,
			CoverageDays:   9,
			LeadTimeDays:   1,
			ProfitPerBox:   5,
			CostPerBox:     10,
		},
	}
	cfg := model.OptimizationConfig{
		ContainerVolumeM3:    5,
		ContainerMaxWeightKg: 1000,
		AvailableBudget:      1000,
		GlobalLeadTimeDays:   30,
		WeightProfit:         0.5,
		WeightDensity:        0.3,
		WeightVelocity:       0.2,
	}

	result := components.OptimizeService.Optimize(context.Background(), "test-req", products, cfg)
	assert.Equal(t, model.StatusOptimal, result.Status)
	assert.Equal(t, 5, result.TotalBoxes)
}
