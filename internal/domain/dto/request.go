// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry the
// schema-level validation that must run before a request reaches the
// optimization engine.
package dto

import (
	"fmt"

	"github.com/guttosm/container-optimizer/internal/domain/model"
)

// OptimizeRequest is the JSON request body for the optimize endpoint.
//
// Products is required. Config is optional: when omitted, the server's
// active configuration preset (or the built-in defaults) is applied.
type OptimizeRequest struct {
	// Products is the candidate catalog for this container.
	Products []model.Product `json:"products" binding:"required,min=1"`
	// Config overrides the server-side optimization configuration.
	Config *model.OptimizationConfig `json:"config,omitempty"`
} // @name OptimizeRequest

// UpdateConfigRequest is the JSON request body for replacing the active
// optimization configuration preset.
type UpdateConfigRequest struct {
	Config model.OptimizationConfig `json:"config" binding:"required"`
	// CreatedBy identifies who saved this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateConfigRequest

// ValidationError reports a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Validate checks every product and, when present, the config against the
// engine's input contract. The engine assumes validated input, so all
// range checks live here.
func (r *OptimizeRequest) Validate() error {
	if len(r.Products) == 0 {
		return fieldError("products", "at least one product is required")
	}
	for i, p := range r.Products {
		if err := validateProduct(i, p); err != nil {
			return err
		}
	}
	if r.Config != nil {
		return ValidateConfig(*r.Config)
	}
	return nil
}

func validateProduct(i int, p model.Product) error {
	prefix := fmt.Sprintf("products[%d]", i)
	switch {
	case p.SKU == "":
		return fieldError(prefix+".SKU", "must not be empty")
	case p.BoxLengthM <= 0 || p.BoxWidthM <= 0 || p.BoxHeightM <= 0:
		return fieldError(prefix, "box dimensions must be positive")
	case p.WeightPerBoxKg <= 0:
		return fieldError(prefix+".WeightPerBox_kg", "must be positive")
	case p.AvailableStock < 0:
		return fieldError(prefix+".AvailableStock", "must not be negative")
	case p.SalesPerDay < 0:
		return fieldError(prefix+".SalesPerDay", "must not be negative")
	case p.CoverageDays <= 0:
		return fieldError(prefix+".CoverageDays", "must be positive")
	case p.CostPerBox < 0:
		return fieldError(prefix+".CostPerBox", "must not be negative")
	case p.MinShipQty < 0:
		return fieldError(prefix+".MinShipQty", "must not be negative")
	case p.LeadTimeDays < 0:
		return fieldError(prefix+".LeadTimeDays", "must not be negative")
	}
	return nil
}

// ValidateConfig checks an optimization configuration, including the
// weight-sum precondition the engine itself does not enforce.
func ValidateConfig(cfg model.OptimizationConfig) error {
	switch {
	case cfg.ContainerVolumeM3 <= 0:
		return fieldError("config.CONTAINER_VOLUME_M3", "must be positive")
	case cfg.ContainerMaxWeightKg <= 0:
		return fieldError("config.CONTAINER_MAX_WEIGHT_KG", "must be positive")
	case cfg.AvailableBudget <= 0:
		return fieldError("config.AVAILABLE_BUDGET", "must be positive")
	case cfg.GlobalLeadTimeDays <= 0:
		return fieldError("config.GLOBAL_LEAD_TIME_DAYS", "must be positive")
	}
	for name, w := range map[string]float64{
		"config.w_profit":   cfg.WeightProfit,
		"config.w_density":  cfg.WeightDensity,
		"config.w_velocity": cfg.WeightVelocity,
	} {
		if w < 0 || w > 1 {
			return fieldError(name, "must be within [0, 1]")
		}
	}
	if !cfg.WeightsSumToOne() {
		return fieldError("config", "score weights must sum to 1.0")
	}
	return nil
}

// Validate checks the config of an UpdateConfigRequest.
func (r *UpdateConfigRequest) Validate() error {
	return ValidateConfig(r.Config)
}
