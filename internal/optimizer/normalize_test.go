package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/container-optimizer/internal/domain/model"
)

func TestMinMaxNormalize(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected []float64
	}{
		{
			name:     "spread values hit 0 and 1",
			values:   []float64{10, 20, 30},
			expected: []float64{0, 0.5, 1},
		},
		{
			name:     "all equal collapses to 1.0",
			values:   []float64{7, 7, 7},
			expected: []float64{1, 1, 1},
		},
		{
			name:     "negative values permitted",
			values:   []float64{-10, 0, 10},
			expected: []float64{0, 0.5, 1},
		},
		{
			name:     "single value",
			values:   []float64{42},
			expected: []float64{1},
		},
		{
			name:     "empty input",
			values:   nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := minMaxNormalize(tt.values)
			require.Len(t, out, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], out[i], 1e-12)
			}
		})
	}
}

func TestMinMaxNormalize_Range(t *testing.T) {
	values := []float64{3.2, -1.5, 0, 12.8, 12.8, 7.1}
	out := minMaxNormalize(values)

	min, max := out[0], out[0]
	for _, v := range out {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	assert.InDelta(t, 0.0, min, 1e-12)
	assert.InDelta(t, 1.0, max, 1e-12)
}

func TestScoreCandidates_WeightsAppliedAsGiven(t *testing.T) {
	candidates := []DerivedMetrics{
		{Profit: 10, Density: 100, Velocity: 1},
		{Profit: 20, Density: 50, Velocity: 3},
		{Profit: 30, Density: 200, Velocity: 2},
	}

	t.Run("pure profit weighting", func(t *testing.T) {
		cfg := model.OptimizationConfig{WeightProfit: 1}
		scores := scoreCandidates(candidates, cfg)
		require.Len(t, scores, 3)
		assert.InDelta(t, 0.0, scores[0], 1e-12)
		assert.InDelta(t, 0.5, scores[1], 1e-12)
		assert.InDelta(t, 1.0, scores[2], 1e-12)
	})

	t.Run("blended weights", func(t *testing.T) {
		cfg := model.OptimizationConfig{WeightProfit: 0.5, WeightDensity: 0.3, WeightVelocity: 0.2}
		scores := scoreCandidates(candidates, cfg)
		require.Len(t, scores, 3)
		// Candidate 2: profit 1.0, density (200-50)/150 = 1.0, velocity 0.5.
		assert.InDelta(t, 0.5*1.0+0.3*1.0+0.2*0.5, scores[2], 1e-12)
	})

	t.Run("unnormalized weights used exactly", func(t *testing.T) {
		cfg := model.OptimizationConfig{WeightProfit: 2} // caller broke the precondition
		scores := scoreCandidates(candidates, cfg)
		assert.InDelta(t, 2.0, scores[2], 1e-12)
	})

	t.Run("empty candidate set", func(t *testing.T) {
		assert.Nil(t, scoreCandidates(nil, model.OptimizationConfig{WeightProfit: 1}))
	})
}
