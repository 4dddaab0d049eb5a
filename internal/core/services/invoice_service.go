package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/dto"
	"github.com/SscSPs/bizos_calc/internal/utils/pricing"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	riskScorer  portssvc.RiskScorer
	taxRounding domain.RoundingMode
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithRiskScorer attaches a scorer whose assessment is added to every quote.
func WithRiskScorer(scorer portssvc.RiskScorer) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.riskScorer = scorer
	}
}

// WithTaxRounding sets how per-rate tax is rounded to cents.
func WithTaxRounding(mode domain.RoundingMode) InvoiceServiceOption {
	return func(s *invoiceService) {
		if mode.IsValid() {
			s.taxRounding = mode
		}
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		taxRounding: domain.RoundHalfUp,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// QuoteInvoice prices the draft and resolves its due date.
// A failing risk scorer is logged and the quote is returned without an assessment.
func (s *invoiceService) QuoteInvoice(ctx context.Context, req dto.QuoteInvoiceRequest) (*domain.InvoiceQuote, error) {
	issueDate, err := dto.ParseDate("issueDate", req.IssueDate)
	if err != nil {
		return nil, err
	}
	customDueDate, err := dto.ParseOptionalDate("customDueDate", req.CustomDueDate)
	if err != nil {
		return nil, err
	}

	dueDate, term, fellBack, err := s.ResolveDueDate(ctx, req.PaymentTerm, issueDate, customDueDate)
	if err != nil {
		return nil, err
	}

	result, err := pricing.ComputePricing(dto.ToLineItems(req.LineItems), req.TaxRate, pricing.WithTaxRounding(s.taxRounding))
	if err != nil {
		s.LogDebug(ctx, "Rejected invoice line items", slog.String("error", err.Error()))
		return nil, err
	}

	quote := &domain.InvoiceQuote{
		Pricing:      result,
		IssueDate:    domain.DateOnly(issueDate),
		DueDate:      dueDate,
		PaymentTerm:  term,
		TermFellBack: fellBack,
		TaxRate:      req.TaxRate,
	}

	if s.riskScorer != nil {
		assessment, err := s.riskScorer.ScoreInvoice(ctx, quote)
		if err != nil {
			s.LogWarn(ctx, "Risk scoring failed, returning quote without assessment", slog.String("error", err.Error()))
		} else {
			quote.Risk = &assessment
		}
	}

	s.LogInfo(ctx, "Invoice quoted",
		slog.Int("line_items", len(req.LineItems)),
		slog.String("total", result.TotalAmount.String()),
		slog.String("due_date", dueDate.Format(dto.DateLayout)))
	return quote, nil
}

// ResolveDueDate maps a loosely spelled term to a due date. An empty term means the default
// term; any other unrecognised term also falls back to it and is logged.
func (s *invoiceService) ResolveDueDate(ctx context.Context, term string, issueDate time.Time, customDueDate *time.Time) (time.Time, domain.PaymentTerm, bool, error) {
	resolved := domain.DefaultPaymentTerm
	fellBack := false
	if strings.TrimSpace(term) != "" {
		parsed := domain.ParsePaymentTerm(term)
		if parsed.IsKnown() {
			resolved = parsed
		} else {
			fellBack = true
			s.LogWarn(ctx, "Unknown payment term, falling back to default",
				slog.String("payment_term", term),
				slog.String("default", string(domain.DefaultPaymentTerm)))
		}
	}

	dueDate, err := pricing.ResolveDueDate(resolved, issueDate, customDueDate)
	if err != nil {
		return time.Time{}, "", false, err
	}
	return dueDate, resolved, fellBack, nil
}
