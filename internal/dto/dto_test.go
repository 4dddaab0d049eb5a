package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/SscSPs/bizos_calc/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, dto.RegisterValidatorsOn(v))
	return v
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validLine() dto.LineItemRequest {
	return dto.LineItemRequest{
		Kind:      "service",
		Quantity:  decimal.NewFromInt(2),
		UnitPrice: domain.MustParseMoney("150"),
	}
}

func TestQuoteInvoiceRequestValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		mutate  func(r *dto.QuoteInvoiceRequest)
		wantErr bool
	}{
		{"valid", func(r *dto.QuoteInvoiceRequest) {}, false},
		{"no line items", func(r *dto.QuoteInvoiceRequest) { r.LineItems = nil }, true},
		{"unknown kind", func(r *dto.QuoteInvoiceRequest) { r.LineItems[0].Kind = "widget" }, true},
		{"negative quantity", func(r *dto.QuoteInvoiceRequest) { r.LineItems[0].Quantity = decimal.NewFromInt(-1) }, true},
		{"negative price", func(r *dto.QuoteInvoiceRequest) { r.LineItems[0].UnitPrice = -1 }, true},
		{"rate above one", func(r *dto.QuoteInvoiceRequest) { r.TaxRate = decimal.RequireFromString("1.5") }, true},
		{"item rate above one", func(r *dto.QuoteInvoiceRequest) { r.LineItems[0].TaxRate = decPtr("2") }, true},
		{"item rate in range", func(r *dto.QuoteInvoiceRequest) { r.LineItems[0].TaxRate = decPtr("0.05") }, false},
		{"bad issue date", func(r *dto.QuoteInvoiceRequest) { r.IssueDate = "01/02/2024" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.QuoteInvoiceRequest{
				LineItems: []dto.LineItemRequest{validLine()},
				TaxRate:   decimal.RequireFromString("0.0825"),
				IssueDate: "2024-01-15",
			}
			tt.mutate(&req)

			err := v.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomTags(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Var("Net 30", "payment_term"))
	assert.Error(t, v.Var("net_45", "payment_term"))
	assert.NoError(t, v.Var("average_cost", "cost_basis_method"))
	assert.Error(t, v.Var("hifo", "cost_basis_method"))
	assert.NoError(t, v.Var("fee", "line_item_kind"))
}

func TestGenerateTaxReportRequestValidation(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(dto.GenerateTaxReportRequest{TaxYear: 2024}))
	assert.NoError(t, v.Struct(dto.GenerateTaxReportRequest{TaxYear: 2024, Method: "lifo"}))
	assert.Error(t, v.Struct(dto.GenerateTaxReportRequest{TaxYear: 1800}))
	assert.Error(t, v.Struct(dto.GenerateTaxReportRequest{TaxYear: 2024, Method: "hifo"}))
}

func TestToDomainTransactions(t *testing.T) {
	reqs := []dto.PortfolioTransactionRequest{
		{TransactionID: "b1", Symbol: " aapl ", Type: "BUY", Quantity: decimal.NewFromInt(10), Price: domain.MustParseMoney("100"), TradeDate: "2024-01-10"},
		{Type: "DIVIDEND", Amount: domain.MustParseMoney("12.50"), TradeDate: "2024-03-01", Qualified: true},
	}

	txns, err := dto.ToDomainTransactions("pf-1", reqs)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "AAPL", txns[0].Symbol)
	assert.Equal(t, "pf-1", txns[0].PortfolioID)
	assert.Equal(t, domain.TxBuy, txns[0].Type)
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), txns[0].TradeDate)
	assert.True(t, txns[1].Qualified)
	assert.Equal(t, "12.50", txns[1].Amount.String())
}

func TestToDomainTransactions_BadDate(t *testing.T) {
	_, err := dto.ToDomainTransactions("pf-1", []dto.PortfolioTransactionRequest{{Type: "BUY", TradeDate: "2024-13-01"}})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "transactions[0].tradeDate", verr.Field)
}

func TestToTaxReportResponse(t *testing.T) {
	report := &domain.TaxReport{
		ReportID:    "r-1",
		PortfolioID: "pf-1",
		TaxYear:     2024,
		Method:      domain.CostBasisFIFO,
		Gains:       domain.CapitalGainsReport{Method: domain.CostBasisFIFO},
	}

	full := dto.ToTaxReportResponse(report, true)
	require.NotNil(t, full.Gains)
	assert.Equal(t, "fifo", full.Method)

	listed := dto.ToTaxReportResponses([]domain.TaxReport{*report})
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0].Gains)
}
