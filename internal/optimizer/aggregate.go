package optimizer

import "github.com/guttosm/container-optimizer/internal/domain/model"

// aggregate converts a solved assignment back into business metrics: one
// ResultItem per selected candidate, exact totals and utilization
// percentages. Utilizations are not clamped; a value above 100 would mean
// the model was built against the wrong capacity and should fail tests.
func aggregate(candidates []DerivedMetrics, scores []float64, values []int, cfg model.OptimizationConfig) model.OptimizationResult {
	result := model.OptimizationResult{
		Status:        model.StatusOptimal,
		SelectedItems: make([]model.ResultItem, 0, len(candidates)),
	}

	for i, c := range candidates {
		qty := values[i]
		if qty <= 0 {
			continue
		}
		item := model.ResultItem{
			SKU:          c.Product.SKU,
			Description:  c.Product.Description,
			SelectedQty:  qty,
			VolumeUsedM3: c.UnitVolume * float64(qty),
			WeightUsedKg: c.Product.WeightPerBoxKg * float64(qty),
			TotalCost:    c.Product.CostPerBox * float64(qty),
			TotalProfit:  c.Product.ProfitPerBox * float64(qty),
			Score:        scores[i] * float64(qty),
			OrderQty:     c.OrderQty,
		}
		result.SelectedItems = append(result.SelectedItems, item)

		result.TotalBoxes += qty
		result.TotalVolumeM3 += item.VolumeUsedM3
		result.TotalWeightKg += item.WeightUsedKg
		result.TotalCost += item.TotalCost
		result.TotalProfit += item.TotalProfit
		result.TotalScore += item.Score
	}

	if cfg.ContainerVolumeM3 > 0 {
		result.VolumeUtilization = 100 * result.TotalVolumeM3 / cfg.ContainerVolumeM3
	}
	if cfg.ContainerMaxWeightKg > 0 {
		result.WeightUtilization = 100 * result.TotalWeightKg / cfg.ContainerMaxWeightKg
	}
	if cfg.AvailableBudget > 0 {
		result.BudgetUtilization = 100 * result.TotalCost / cfg.AvailableBudget
	}

	return result
}
