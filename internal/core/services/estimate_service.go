package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/utils/pricing"
)

type estimateService struct {
	BaseService
}

// NewEstimateService creates a new estimate service
func NewEstimateService() portssvc.EstimateSvcFacade {
	return &estimateService{}
}

func (s *estimateService) PriceEstimate(ctx context.Context, in domain.MarkupPricing) (*domain.MarkupPricingResult, error) {
	result, err := pricing.ComputeMarkupPricing(in)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Estimate priced",
		slog.String("total", result.TotalWithMarkup.String()),
		slog.String("margin_percent", result.ProfitMarginPercent.String()))
	return &result, nil
}
