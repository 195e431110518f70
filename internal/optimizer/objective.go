package optimizer

import "github.com/guttosm/container-optimizer/internal/domain/model"

// scoreCandidates computes the per-unit objective coefficient for each
// candidate: the caller-supplied weights applied to the min-max normalized
// profit, density and velocity metrics. Weights are used exactly as given;
// keeping their sum at 1.0 is the caller's responsibility and is enforced
// by request validation, not here.
func scoreCandidates(candidates []DerivedMetrics, cfg model.OptimizationConfig) []float64 {
	if len(candidates) == 0 {
		return nil
	}

	profit := make([]float64, len(candidates))
	density := make([]float64, len(candidates))
	velocity := make([]float64, len(candidates))
	for i, c := range candidates {
		profit[i] = c.Profit
		density[i] = c.Density
		velocity[i] = c.Velocity
	}

	normProfit := minMaxNormalize(profit)
	normDensity := minMaxNormalize(density)
	normVelocity := minMaxNormalize(velocity)

	scores := make([]float64, len(candidates))
	for i := range candidates {
		scores[i] = cfg.WeightProfit*normProfit[i] +
			cfg.WeightDensity*normDensity[i] +
			cfg.WeightVelocity*normVelocity[i]
	}
	return scores
}
