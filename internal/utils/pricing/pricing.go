package pricing

import (
	"fmt"
	"sort"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Option configures ComputePricing.
type Option func(*options)

type options struct {
	taxRounding domain.RoundingMode
}

// WithTaxRounding sets how the tax of each rate group is rounded to cents.
// The default is domain.RoundHalfUp.
func WithTaxRounding(mode domain.RoundingMode) Option {
	return func(o *options) {
		if mode.IsValid() {
			o.taxRounding = mode
		}
	}
}

// ComputePricing totals a set of line items.
//
// Every line contributes its total to the subtotal, and every line not marked exempt contributes
// to the taxable base. Fee and discount lines are additionally reported in their own buckets and
// applied once more in the total. Line totals are rounded half-even. Tax is computed per rate on
// the taxable base and rounded once per rate with the configured mode. The total is not clamped
// at zero when discounts exceed everything else.
func ComputePricing(items []domain.LineItem, taxRate decimal.Decimal, opts ...Option) (domain.PricingResult, error) {
	o := options{taxRounding: domain.RoundHalfUp}
	for _, opt := range opts {
		opt(&o)
	}

	if len(items) == 0 {
		return domain.PricingResult{}, apperrors.NewValidationError("items", "at least one line item is required")
	}
	if err := validateRate("taxRate", taxRate); err != nil {
		return domain.PricingResult{}, err
	}

	var result domain.PricingResult
	// taxable base in cents keyed by the rate's canonical string
	taxableByRate := make(map[string]domain.Money)
	rates := make(map[string]decimal.Decimal)

	for i, item := range items {
		if err := validateItem(i, item); err != nil {
			return domain.PricingResult{}, err
		}

		total := item.TotalPrice()
		result.Subtotal += total
		switch item.Kind {
		case domain.LineItemFee:
			result.TotalFees += total
		case domain.LineItemDiscount:
			if item.DiscountAmount != nil {
				result.TotalDiscounts += item.DiscountAmount.Abs()
			}
		}

		if !item.Taxable() {
			continue
		}
		rate := taxRate
		if item.TaxRate != nil {
			rate = *item.TaxRate
		}
		key := rate.String()
		taxableByRate[key] += total
		rates[key] = rate
		result.TaxableAmount += total
	}

	// deterministic summation order
	keys := make([]string, 0, len(taxableByRate))
	for k := range taxableByRate {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		result.TotalTax += o.taxRounding.RoundCents(taxableByRate[k].MulDecimal(rates[k]))
	}

	result.TotalAmount = result.Subtotal + result.TotalTax + result.TotalFees - result.TotalDiscounts
	return result, nil
}

func validateItem(i int, item domain.LineItem) error {
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }

	if !item.Kind.IsValid() {
		return apperrors.NewValidationError(field("kind"), "unknown line item kind %q", item.Kind)
	}
	if item.Quantity.IsNegative() {
		return apperrors.NewValidationError(field("quantity"), "must not be negative, got %s", item.Quantity.String())
	}
	if item.UnitPrice.IsNegative() {
		return apperrors.NewValidationError(field("unitPrice"), "must not be negative, got %s", item.UnitPrice.String())
	}
	if item.TaxRate != nil {
		if err := validateRate(field("taxRate"), *item.TaxRate); err != nil {
			return err
		}
	}
	return nil
}

func validateRate(field string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return apperrors.NewValidationError(field, "must be a fraction between 0 and 1, got %s", rate.String())
	}
	return nil
}
