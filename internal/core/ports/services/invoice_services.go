package services

import (
	"context"
	"time"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/SscSPs/bizos_calc/internal/dto"
)

// InvoicePricingSvc defines invoice pricing operations
type InvoicePricingSvc interface {
	// QuoteInvoice prices the draft line items and resolves the due date.
	QuoteInvoice(ctx context.Context, req dto.QuoteInvoiceRequest) (*domain.InvoiceQuote, error)
}

// DueDateSvc resolves payment due dates
type DueDateSvc interface {
	// ResolveDueDate returns the due date for the term and whether an unknown term fell back to the default.
	ResolveDueDate(ctx context.Context, term string, issueDate time.Time, customDueDate *time.Time) (dueDate time.Time, resolved domain.PaymentTerm, fellBack bool, err error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoicePricingSvc
	DueDateSvc
}

// RiskScorer rates a priced invoice. Implementations may call out to external models.
type RiskScorer interface {
	ScoreInvoice(ctx context.Context, quote *domain.InvoiceQuote) (domain.RiskAssessment, error)
}
