// Package model defines the core domain entities for the container optimizer.
package model

import "math"

// WeightSumTolerance is how far the three score weights may drift from 1.0
// before the configuration is rejected by request validation.
const WeightSumTolerance = 0.01

// Status is the canonical terminal status of an optimization run.
type Status string

const (
	// StatusOptimal means an optimal integer solution was found.
	StatusOptimal Status = "Optimal"
	// StatusInfeasible means the constraints cannot be simultaneously satisfied.
	StatusInfeasible Status = "Infeasible"
	// StatusUnbounded means the objective is unbounded (should not occur with finite order quantities).
	StatusUnbounded Status = "Unbounded"
	// StatusUndefined means the solver stopped without a conclusive status, e.g. time limit reached.
	StatusUndefined Status = "Undefined"
	// StatusError means model building or solver invocation failed.
	StatusError Status = "Error"
)

// Product is one SKU candidate for container loading.
//
// Field names on the wire match the tabular input format of the planning
// frontend; dimensions are in meters, weight in kilograms.
type Product struct {
	// SKU uniquely identifies the product within a request.
	SKU string `json:"SKU" binding:"required" example:"WIDGET-01"`
	// Description is a human-readable product name.
	Description string `json:"Description" example:"Boxed widgets, 24pc"`
	// BoxLengthM, BoxWidthM, BoxHeightM are the box dimensions in meters.
	BoxLengthM float64 `json:"BoxLength_m" example:"0.5"`
	BoxWidthM  float64 `json:"BoxWidth_m" example:"0.4"`
	BoxHeightM float64 `json:"BoxHeight_m" example:"0.3"`
	// WeightPerBoxKg is the gross weight of one box in kilograms.
	WeightPerBoxKg float64 `json:"WeightPerBox_kg" example:"12.5"`
	// AvailableStock is the quantity already on hand.
	AvailableStock int `json:"AvailableStock" example:"40"`
	// SalesPerDay is the average daily sales rate.
	SalesPerDay float64 `json:"SalesPerDay" example:"3.5"`
	// CoverageDays is how many days of demand the shipment should cover.
	CoverageDays int `json:"CoverageDays" example:"30"`
	// ProfitPerBox may be negative for loss-leader SKUs.
	ProfitPerBox float64 `json:"ProfitPerBox" example:"18"`
	// CostPerBox is the purchase cost charged against the budget.
	CostPerBox float64 `json:"CostPerBox" example:"55"`
	// MinShipQty is the minimum shippable quantity: the selected quantity
	// is either zero or at least this value.
	MinShipQty int `json:"MinShipQty" example:"10"`
	// LeadTimeDays overrides the global default lead time when > 0.
	LeadTimeDays int `json:"LeadTimeDays,omitempty" example:"14"`
}

// UnitVolume returns the volume of one box in cubic meters.
func (p Product) UnitVolume() float64 {
	return p.BoxLengthM * p.BoxWidthM * p.BoxHeightM
}

// EffectiveLeadTime returns the product lead time, falling back to the
// global default when the product does not carry one.
func (p Product) EffectiveLeadTime(globalDays int) int {
	if p.LeadTimeDays > 0 {
		return p.LeadTimeDays
	}
	return globalDays
}

// OptimizationConfig carries the container capacities, the budget and the
// scoring weights for a single optimization request. Wire keys match the
// original planning frontend.
type OptimizationConfig struct {
	// ContainerVolumeM3 is the usable container volume in cubic meters.
	ContainerVolumeM3 float64 `json:"CONTAINER_VOLUME_M3" example:"66"`
	// ContainerMaxWeightKg is the maximum payload weight in kilograms.
	ContainerMaxWeightKg float64 `json:"CONTAINER_MAX_WEIGHT_KG" example:"26000"`
	// AvailableBudget is the purchasing budget for this container.
	AvailableBudget float64 `json:"AVAILABLE_BUDGET" example:"50000"`
	// GlobalLeadTimeDays is the default lead time for products without one.
	GlobalLeadTimeDays int `json:"GLOBAL_LEAD_TIME_DAYS" example:"30"`
	// WeightProfit, WeightDensity and WeightVelocity blend the normalized
	// metrics into the per-unit score. Callers must keep the sum at 1.0
	// within WeightSumTolerance; the engine applies them exactly as given.
	WeightProfit   float64 `json:"w_profit" example:"0.5"`
	WeightDensity  float64 `json:"w_density" example:"0.3"`
	WeightVelocity float64 `json:"w_velocity" example:"0.2"`
}

// DefaultOptimizationConfig returns the built-in configuration applied when
// a request carries no inline config and no preset is active. Capacities
// match a 40ft high-cube container.
func DefaultOptimizationConfig() OptimizationConfig {
	return OptimizationConfig{
		ContainerVolumeM3:    66,
		ContainerMaxWeightKg: 26000,
		AvailableBudget:      100000,
		GlobalLeadTimeDays:   30,
		WeightProfit:         0.5,
		WeightDensity:        0.3,
		WeightVelocity:       0.2,
	}
}

// WeightsSumToOne reports whether the three score weights sum to 1.0
// within WeightSumTolerance.
func (c OptimizationConfig) WeightsSumToOne() bool {
	sum := c.WeightProfit + c.WeightDensity + c.WeightVelocity
	return math.Abs(sum-1.0) <= WeightSumTolerance
}

// ResultItem is one selected product in an optimal solution.
type ResultItem struct {
	SKU         string `json:"SKU"`
	Description string `json:"Description"`
	// SelectedQty is the number of boxes chosen by the solver.
	SelectedQty int `json:"SelectedQty"`
	// VolumeUsedM3, WeightUsedKg, TotalCost, TotalProfit and Score are the
	// per-unit values multiplied by SelectedQty.
	VolumeUsedM3 float64 `json:"VolumeUsed_m3"`
	WeightUsedKg float64 `json:"WeightUsed_kg"`
	TotalCost    float64 `json:"TotalCost"`
	TotalProfit  float64 `json:"TotalProfit"`
	Score        float64 `json:"Score"`
	// OrderQty is the demand-derived quantity the solver selected from,
	// reported for comparison against SelectedQty.
	OrderQty int `json:"OrderQty"`
}

// OptimizationResult is the complete outcome of one optimization request.
// Every failure mode resolves to a well-formed result; callers never see a
// partial or missing structure.
type OptimizationResult struct {
	Status        Status `json:"status"`
	StatusMessage string `json:"statusMessage,omitempty"`
	TotalBoxes    int    `json:"totalBoxes"`
	// Totals and their utilization percentages relative to capacity/budget.
	TotalVolumeM3     float64      `json:"totalVolume_m3"`
	VolumeUtilization float64      `json:"volumeUtilization"`
	TotalWeightKg     float64      `json:"totalWeight_kg"`
	WeightUtilization float64      `json:"weightUtilization"`
	TotalCost         float64      `json:"totalCost"`
	BudgetUtilization float64      `json:"budgetUtilization"`
	TotalProfit       float64      `json:"totalProfit"`
	TotalScore        float64      `json:"totalScore"`
	SelectedItems     []ResultItem `json:"selectedItems"`
}

// EmptyResult returns a zero-total result with the given status and message.
func EmptyResult(status Status, message string) OptimizationResult {
	return OptimizationResult{
		Status:        status,
		StatusMessage: message,
		SelectedItems: []ResultItem{},
	}
}
