package services

import (
	"context"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
)

// EstimateSvcFacade defines estimate pricing operations
type EstimateSvcFacade interface {
	// PriceEstimate applies markup to the estimate's cost components.
	PriceEstimate(ctx context.Context, in domain.MarkupPricing) (*domain.MarkupPricingResult, error)
}
