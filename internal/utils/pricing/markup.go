package pricing

import (
	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred         = decimal.NewFromInt(100)
	minusOneHundred = decimal.NewFromInt(-100)
)

// ComputeMarkupPricing prices an estimate from its cost components and a markup percentage.
//
//	subtotal        = basePrice + materialCosts + laborRate × estimatedHours
//	totalWithMarkup = subtotal × (1 + markupPercent/100)
//	costs           = materialCosts + laborRate × estimatedHours
//	profit          = totalWithMarkup − costs
//	margin          = profit / totalWithMarkup × 100, or 0 when costs or total are 0
//
// The base price is not part of costs. Math runs at full precision; money is rounded half-even
// to cents and the margin to two decimals only on output.
func ComputeMarkupPricing(in domain.MarkupPricing) (domain.MarkupPricingResult, error) {
	if err := validateMarkupInput(in); err != nil {
		return domain.MarkupPricingResult{}, err
	}

	// all intermediate values are in cents
	laborCost := in.LaborRate.MulDecimal(in.EstimatedHours)
	costs := in.MaterialCosts.CentsDecimal().Add(laborCost)
	subtotal := in.BasePrice.CentsDecimal().Add(costs)
	total := subtotal.Mul(decimal.NewFromInt(1).Add(domain.PercentOf(in.MarkupPercent)))
	profit := total.Sub(costs)

	margin := decimal.Zero
	if costs.IsPositive() && !total.IsZero() {
		margin = profit.Div(total).Mul(hundred)
	}

	return domain.MarkupPricingResult{
		Subtotal:            domain.NewMoneyFromCents(subtotal),
		LaborCost:           domain.NewMoneyFromCents(laborCost),
		Costs:               domain.NewMoneyFromCents(costs),
		TotalWithMarkup:     domain.NewMoneyFromCents(total),
		Profit:              domain.NewMoneyFromCents(profit),
		ProfitMarginPercent: margin.RoundBank(2),
	}, nil
}

func validateMarkupInput(in domain.MarkupPricing) error {
	switch {
	case in.BasePrice.IsNegative():
		return apperrors.NewValidationError("basePrice", "must not be negative")
	case in.LaborRate.IsNegative():
		return apperrors.NewValidationError("laborRate", "must not be negative")
	case in.EstimatedHours.IsNegative():
		return apperrors.NewValidationError("estimatedHours", "must not be negative")
	case in.MaterialCosts.IsNegative():
		return apperrors.NewValidationError("materialCosts", "must not be negative")
	case in.MarkupPercent.LessThan(minusOneHundred):
		return apperrors.NewValidationError("markupPercent", "must not be below -100, got %s", in.MarkupPercent.String())
	}
	return nil
}
