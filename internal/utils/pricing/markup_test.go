package pricing_test

import (
	"testing"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/SscSPs/bizos_calc/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMarkupPricing(t *testing.T) {
	tests := []struct {
		name      string
		in        domain.MarkupPricing
		subtotal  string
		total     string
		profit    string
		marginPct string
	}{
		{
			name: "labor and materials at 50 percent",
			in: domain.MarkupPricing{
				LaborRate:      domain.MustParseMoney("75"),
				EstimatedHours: decimal.NewFromInt(2),
				MaterialCosts:  domain.MustParseMoney("50"),
				MarkupPercent:  decimal.NewFromInt(50),
			},
			subtotal: "200.00", total: "300.00", profit: "100.00", marginPct: "33.33",
		},
		{
			name: "base price counts toward profit, not costs",
			in: domain.MarkupPricing{
				BasePrice:      domain.MustParseMoney("100"),
				LaborRate:      domain.MustParseMoney("60"),
				EstimatedHours: decimal.RequireFromString("1.5"),
				MaterialCosts:  domain.MustParseMoney("10"),
				MarkupPercent:  decimal.NewFromInt(20),
			},
			subtotal: "200.00", total: "240.00", profit: "140.00", marginPct: "58.33",
		},
		{
			name: "no costs yields zero margin",
			in: domain.MarkupPricing{
				BasePrice:     domain.MustParseMoney("99.99"),
				MarkupPercent: decimal.NewFromInt(10),
			},
			subtotal: "99.99", total: "109.99", profit: "109.99", marginPct: "0",
		},
		{
			name: "fractional hours keep full precision until output",
			in: domain.MarkupPricing{
				LaborRate:      domain.MustParseMoney("33.33"),
				EstimatedHours: decimal.RequireFromString("0.333"),
				MarkupPercent:  decimal.RequireFromString("12.5"),
			},
			subtotal: "11.10", total: "12.49", profit: "1.39", marginPct: "11.11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.ComputeMarkupPricing(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.subtotal, got.Subtotal.String())
			assert.Equal(t, tt.total, got.TotalWithMarkup.String())
			assert.Equal(t, tt.profit, got.Profit.String())
			assert.True(t, decimal.RequireFromString(tt.marginPct).Equal(got.ProfitMarginPercent), "margin %s", got.ProfitMarginPercent)
		})
	}
}

func TestComputeMarkupPricing_RejectsNegativeInputs(t *testing.T) {
	inputs := map[string]domain.MarkupPricing{
		"basePrice":      {BasePrice: -1},
		"laborRate":      {LaborRate: -1},
		"estimatedHours": {EstimatedHours: decimal.NewFromInt(-1)},
		"materialCosts":  {MaterialCosts: -1},
		"markupPercent":  {MarkupPercent: decimal.NewFromInt(-101)},
	}

	for field, in := range inputs {
		t.Run(field, func(t *testing.T) {
			_, err := pricing.ComputeMarkupPricing(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), field)
		})
	}
}
