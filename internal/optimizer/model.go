package optimizer

import (
	"github.com/guttosm/container-optimizer/internal/domain/model"
	"github.com/guttosm/container-optimizer/internal/solver"
)

// buildModel translates the candidate set into the solver's mathematical
// program: one semi-continuous integer variable per candidate (zero or
// within [MinShipQty, OrderQty]) and the three shared capacity constraints.
func buildModel(candidates []DerivedMetrics, scores []float64, cfg model.OptimizationConfig) *solver.Model {
	n := len(candidates)

	variables := make([]solver.Variable, n)
	volumeRow := make([]float64, n)
	weightRow := make([]float64, n)
	costRow := make([]float64, n)

	for i, c := range candidates {
		minQty := c.Product.MinShipQty
		if minQty > c.OrderQty {
			// The minimum exceeds demand: the variable can only be zero.
			minQty = c.OrderQty + 1
		}
		variables[i] = solver.Variable{
			Name:   c.Product.SKU,
			MinQty: minQty,
			MaxQty: c.OrderQty,
			Coeff:  scores[i],
		}
		volumeRow[i] = c.UnitVolume
		weightRow[i] = c.Product.WeightPerBoxKg
		costRow[i] = c.Product.CostPerBox
	}

	return &solver.Model{
		Variables: variables,
		Constraints: []solver.Constraint{
			{Name: "volume", Weights: volumeRow, Bound: cfg.ContainerVolumeM3},
			{Name: "weight", Weights: weightRow, Bound: cfg.ContainerMaxWeightKg},
			{Name: "budget", Weights: costRow, Bound: cfg.AvailableBudget},
		},
	}
}
