package dto

import (
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MarkupEstimateRequest defines the cost components of an estimate priced by markup.
type MarkupEstimateRequest struct {
	BasePrice      domain.Money    `json:"basePrice" binding:"gte=0"`
	LaborRate      domain.Money    `json:"laborRate" binding:"gte=0"`
	EstimatedHours decimal.Decimal `json:"estimatedHours" binding:"decimal_nonneg"`
	MaterialCosts  domain.Money    `json:"materialCosts" binding:"gte=0"`
	MarkupPercent  decimal.Decimal `json:"markupPercent"`
}

// ToDomain converts the request to the calculator input.
func (r MarkupEstimateRequest) ToDomain() domain.MarkupPricing {
	return domain.MarkupPricing{
		BasePrice:      r.BasePrice,
		LaborRate:      r.LaborRate,
		EstimatedHours: r.EstimatedHours,
		MaterialCosts:  r.MaterialCosts,
		MarkupPercent:  r.MarkupPercent,
	}
}
