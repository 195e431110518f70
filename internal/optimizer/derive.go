// Package optimizer implements the container load optimization engine:
// demand derivation, metric normalization and scoring, model construction,
// solving and result aggregation. The engine is a pure function from
// (products, config) to an OptimizationResult and holds no state across
// invocations.
package optimizer

import (
	"fmt"
	"math"

	"github.com/guttosm/container-optimizer/internal/domain/model"
)

// DegenerateGeometryError reports a product whose computed box volume is not
// positive. Dimensions arrive from untrusted tabular input, so this is
// guarded here even though request validation should have rejected it.
type DegenerateGeometryError struct {
	SKU string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("product %q has non-positive box volume", e.SKU)
}

// DerivedMetrics holds the demand-driven quantities and raw scoring metrics
// computed for one product. Recomputed on every request, never persisted.
type DerivedMetrics struct {
	Product model.Product

	// OrderQty is the demand the shipment should cover beyond current
	// stock. Products with OrderQty 0 have nothing to ship and are
	// excluded from the decision model.
	OrderQty   int
	UnitVolume float64

	// Raw metrics fed to min-max normalization.
	Profit   float64 // profit per box
	Density  float64 // profit per cubic meter
	Velocity float64 // boxes sold per day
}

// deriveMetrics computes demand and raw scoring metrics for one product.
// Demand covers the lead time plus the coverage window at the average daily
// sales rate; what stock cannot cover becomes the order quantity.
func deriveMetrics(p model.Product, globalLeadTimeDays int) (DerivedMetrics, error) {
	unitVolume := p.UnitVolume()
	if unitVolume <= 0 {
		return DerivedMetrics{}, &DegenerateGeometryError{SKU: p.SKU}
	}

	leadTime := p.EffectiveLeadTime(globalLeadTimeDays)
	demand := p.SalesPerDay * float64(leadTime+p.CoverageDays)

	orderQty := int(math.Ceil(demand)) - p.AvailableStock
	if orderQty < 0 {
		orderQty = 0
	}

	return DerivedMetrics{
		Product:    p,
		OrderQty:   orderQty,
		UnitVolume: unitVolume,
		Profit:     p.ProfitPerBox,
		Density:    p.ProfitPerBox / unitVolume,
		Velocity:   p.SalesPerDay,
	}, nil
}

// deriveAll computes metrics for every product and returns the candidate
// subset, preserving input order. Any degenerate product aborts the whole
// derivation since it indicates corrupted upstream data.
func deriveAll(products []model.Product, globalLeadTimeDays int) ([]DerivedMetrics, error) {
	candidates := make([]DerivedMetrics, 0, len(products))
	for _, p := range products {
		m, err := deriveMetrics(p, globalLeadTimeDays)
		if err != nil {
			return nil, err
		}
		if m.OrderQty > 0 {
			candidates = append(candidates, m)
		}
	}
	return candidates, nil
}
