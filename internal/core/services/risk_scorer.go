package services

import (
	"context"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// NoopRiskScorer rates every invoice as riskless. It stands in until a real model is wired.
type NoopRiskScorer struct{}

var _ portssvc.RiskScorer = NoopRiskScorer{}

func (NoopRiskScorer) ScoreInvoice(_ context.Context, _ *domain.InvoiceQuote) (domain.RiskAssessment, error) {
	return domain.RiskAssessment{Score: decimal.Zero, Scorer: "noop"}, nil
}
