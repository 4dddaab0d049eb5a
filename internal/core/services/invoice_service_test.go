package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/core/services"
	"github.com/SscSPs/bizos_calc/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock RiskScorer ---
type MockRiskScorer struct {
	mock.Mock
}

var _ portssvc.RiskScorer = (*MockRiskScorer)(nil)

func (m *MockRiskScorer) ScoreInvoice(ctx context.Context, quote *domain.InvoiceQuote) (domain.RiskAssessment, error) {
	args := m.Called(ctx, quote)
	return args.Get(0).(domain.RiskAssessment), args.Error(1)
}

func quoteRequest(term string) dto.QuoteInvoiceRequest {
	return dto.QuoteInvoiceRequest{
		LineItems: []dto.LineItemRequest{{
			ID:        "li_1",
			Kind:      "service",
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: domain.MustParseMoney("450"),
		}},
		TaxRate:     decimal.RequireFromString("0.0825"),
		PaymentTerm: term,
		IssueDate:   "2024-02-01",
	}
}

func TestInvoiceService_QuoteInvoice(t *testing.T) {
	svc := services.NewInvoiceService()

	quote, err := svc.QuoteInvoice(context.Background(), quoteRequest("Net 30"))

	require.NoError(t, err)
	assert.Equal(t, "450.00", quote.Pricing.Subtotal.String())
	assert.Equal(t, "37.13", quote.Pricing.TotalTax.String())
	assert.Equal(t, "487.13", quote.Pricing.TotalAmount.String())
	assert.Equal(t, domain.PaymentTermNet30, quote.PaymentTerm)
	assert.False(t, quote.TermFellBack)
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), quote.DueDate)
	assert.Nil(t, quote.Risk)
}

func TestInvoiceService_QuoteInvoice_HalfEvenRounding(t *testing.T) {
	svc := services.NewInvoiceService(services.WithTaxRounding(domain.RoundHalfEven))

	quote, err := svc.QuoteInvoice(context.Background(), quoteRequest("net_15"))

	require.NoError(t, err)
	assert.Equal(t, "37.12", quote.Pricing.TotalTax.String())
	assert.Equal(t, time.Date(2024, time.February, 16, 0, 0, 0, 0, time.UTC), quote.DueDate)
}

func TestInvoiceService_QuoteInvoice_UnknownTermFallsBack(t *testing.T) {
	svc := services.NewInvoiceService()

	quote, err := svc.QuoteInvoice(context.Background(), quoteRequest("net_45"))

	require.NoError(t, err)
	assert.True(t, quote.TermFellBack)
	assert.Equal(t, domain.PaymentTermNet30, quote.PaymentTerm)
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), quote.DueDate)
}

func TestInvoiceService_QuoteInvoice_Risk(t *testing.T) {
	assessment := domain.RiskAssessment{Score: decimal.RequireFromString("0.2"), Scorer: "test"}

	t.Run("scored", func(t *testing.T) {
		scorer := new(MockRiskScorer)
		scorer.On("ScoreInvoice", mock.Anything, mock.AnythingOfType("*domain.InvoiceQuote")).Return(assessment, nil).Once()
		svc := services.NewInvoiceService(services.WithRiskScorer(scorer))

		quote, err := svc.QuoteInvoice(context.Background(), quoteRequest(""))

		require.NoError(t, err)
		require.NotNil(t, quote.Risk)
		assert.Equal(t, "test", quote.Risk.Scorer)
		scorer.AssertExpectations(t)
	})

	t.Run("scorer failure is not fatal", func(t *testing.T) {
		scorer := new(MockRiskScorer)
		scorer.On("ScoreInvoice", mock.Anything, mock.Anything).Return(domain.RiskAssessment{}, errors.New("model offline")).Once()
		svc := services.NewInvoiceService(services.WithRiskScorer(scorer))

		quote, err := svc.QuoteInvoice(context.Background(), quoteRequest(""))

		require.NoError(t, err)
		assert.Nil(t, quote.Risk)
		assert.Equal(t, "487.13", quote.Pricing.TotalAmount.String())
	})

	t.Run("noop scorer", func(t *testing.T) {
		svc := services.NewInvoiceService(services.WithRiskScorer(services.NoopRiskScorer{}))

		quote, err := svc.QuoteInvoice(context.Background(), quoteRequest(""))

		require.NoError(t, err)
		require.NotNil(t, quote.Risk)
		assert.True(t, quote.Risk.Score.IsZero())
	})
}

func TestInvoiceService_QuoteInvoice_Errors(t *testing.T) {
	svc := services.NewInvoiceService()
	before := "2024-01-31"

	tests := []struct {
		name   string
		mutate func(r *dto.QuoteInvoiceRequest)
		field  string
	}{
		{"bad issue date", func(r *dto.QuoteInvoiceRequest) { r.IssueDate = "2024-02-30" }, "issueDate"},
		{"custom without date", func(r *dto.QuoteInvoiceRequest) { r.PaymentTerm = "custom" }, "customDueDate"},
		{"custom before issue", func(r *dto.QuoteInvoiceRequest) {
			r.PaymentTerm = "custom"
			r.CustomDueDate = &before
		}, "customDueDate"},
		{"no items", func(r *dto.QuoteInvoiceRequest) { r.LineItems = nil }, "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := quoteRequest("")
			tt.mutate(&req)

			_, err := svc.QuoteInvoice(context.Background(), req)

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestInvoiceService_ResolveDueDate(t *testing.T) {
	svc := services.NewInvoiceService()
	issue := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	due, term, fellBack, err := svc.ResolveDueDate(context.Background(), "DUE ON RECEIPT", issue, nil)
	require.NoError(t, err)
	assert.Equal(t, issue, due)
	assert.Equal(t, domain.PaymentTermDueOnReceipt, term)
	assert.False(t, fellBack)

	due, _, _, err = svc.ResolveDueDate(context.Background(), "net-60", issue, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), due)
}

func TestEstimateService_PriceEstimate(t *testing.T) {
	svc := services.NewEstimateService()

	result, err := svc.PriceEstimate(context.Background(), domain.MarkupPricing{
		LaborRate:      domain.MustParseMoney("50"),
		EstimatedHours: decimal.NewFromInt(2),
		MaterialCosts:  domain.MustParseMoney("100"),
		MarkupPercent:  decimal.NewFromInt(50),
	})

	require.NoError(t, err)
	assert.Equal(t, "300.00", result.TotalWithMarkup.String())
	assert.Equal(t, "100.00", result.Profit.String())

	_, err = svc.PriceEstimate(context.Background(), domain.MarkupPricing{LaborRate: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
