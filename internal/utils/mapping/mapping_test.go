package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/SscSPs/bizos_calc/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioTransactionMapping(t *testing.T) {
	tx := domain.PortfolioTransaction{
		TransactionID: "s1",
		PortfolioID:   "pf-1",
		Symbol:        "AAPL",
		Type:          domain.TxSell,
		Quantity:      decimal.RequireFromString("2.5"),
		Price:         domain.MustParseMoney("101.25"),
		Fees:          domain.MustParseMoney("1.00"),
		TradeDate:     time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC),
		LotID:         "b1",
	}

	row := mapping.ToModelPortfolioTransaction(tx)
	assert.Equal(t, int64(10125), row.PriceCents)
	require.NotNil(t, row.LotID)
	assert.Equal(t, "b1", *row.LotID)

	back := mapping.ToDomainPortfolioTransaction(row)
	assert.Equal(t, "101.25", back.Price.String())
	assert.Equal(t, "b1", back.LotID)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), back.TradeDate)

	tx.LotID = ""
	assert.Nil(t, mapping.ToModelPortfolioTransaction(tx).LotID)
}

func TestTaxReportMapping(t *testing.T) {
	report := domain.TaxReport{
		ReportID:    "r-1",
		PortfolioID: "pf-1",
		TaxYear:     2024,
		Method:      domain.CostBasisLIFO,
		Summary: domain.TaxReportSummary{
			TaxYear:               2024,
			EstimatedTaxLiability: domain.MustParseMoney("1055"),
			IsEstimate:            true,
		},
		Gains: domain.CapitalGainsReport{
			Method:         domain.CostBasisLIFO,
			NetCapitalGain: domain.MustParseMoney("-12.34"),
			Transactions:   []domain.CapitalGainTransaction{{SaleID: "s1", Quantity: decimal.NewFromInt(3)}},
		},
		AuditFields: domain.NewAuditFields("user-1", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)),
	}

	row, err := mapping.ToModelTaxReport(report)
	require.NoError(t, err)
	assert.Contains(t, string(row.Summary), `"estimatedTaxLiability":"1055.00"`)

	back, err := mapping.ToDomainTaxReport(row)
	require.NoError(t, err)
	assert.Equal(t, "1055.00", back.Summary.EstimatedTaxLiability.String())
	assert.Equal(t, "-12.34", back.Gains.NetCapitalGain.String())
	require.Len(t, back.Gains.Transactions, 1)
	assert.True(t, decimal.NewFromInt(3).Equal(back.Gains.Transactions[0].Quantity))
	assert.Equal(t, report.CreatedAt, back.CreatedAt)

	row.Summary = []byte("{")
	_, err = mapping.ToDomainTaxReport(row)
	assert.Error(t, err)
}
