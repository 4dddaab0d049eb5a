package dto

import (
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used on the wire.
const DateLayout = "2006-01-02"

// LineItemRequest is one line of an invoice or estimate draft.
type LineItemRequest struct {
	ID             string           `json:"id"`
	Kind           string           `json:"kind" binding:"required,line_item_kind"`
	Description    string           `json:"description"`
	Quantity       decimal.Decimal  `json:"quantity" binding:"decimal_nonneg"`
	UnitPrice      domain.Money     `json:"unitPrice" binding:"gte=0"`
	IsTaxable      *bool            `json:"isTaxable,omitempty"`
	TaxRate        *decimal.Decimal `json:"taxRate,omitempty" binding:"omitempty,decimal_rate"`
	DiscountAmount *domain.Money    `json:"discountAmount,omitempty"`
}

// QuoteInvoiceRequest defines the data needed to price an invoice and resolve its due date.
type QuoteInvoiceRequest struct {
	LineItems     []LineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
	TaxRate       decimal.Decimal   `json:"taxRate" binding:"decimal_rate"`
	PaymentTerm   string            `json:"paymentTerm"`
	IssueDate     string            `json:"issueDate" binding:"required,datetime=2006-01-02"`
	CustomDueDate *string           `json:"customDueDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// DueDateRequest defines the data needed to resolve a due date.
type DueDateRequest struct {
	PaymentTerm   string  `json:"paymentTerm"`
	IssueDate     string  `json:"issueDate" binding:"required,datetime=2006-01-02"`
	CustomDueDate *string `json:"customDueDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// DueDateResponse is the resolved due date.
type DueDateResponse struct {
	IssueDate    string `json:"issueDate"`
	DueDate      string `json:"dueDate"`
	PaymentTerm  string `json:"paymentTerm"`
	TermFellBack bool   `json:"termFellBack"`
}

// InvoiceQuoteResponse is the priced invoice.
type InvoiceQuoteResponse struct {
	domain.PricingResult
	TaxRate      decimal.Decimal        `json:"taxRate"`
	IssueDate    string                 `json:"issueDate"`
	DueDate      string                 `json:"dueDate"`
	PaymentTerm  string                 `json:"paymentTerm"`
	TermFellBack bool                   `json:"termFellBack"`
	Risk         *domain.RiskAssessment `json:"risk,omitempty"`
}

// ToLineItems converts request lines to domain line items.
func ToLineItems(items []LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, li := range items {
		out[i] = domain.LineItem{
			ID:             li.ID,
			Kind:           domain.LineItemKind(li.Kind),
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			IsTaxable:      li.IsTaxable,
			TaxRate:        li.TaxRate,
			DiscountAmount: li.DiscountAmount,
		}
	}
	return out
}

// ParseDate parses a wire date into a UTC calendar date.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// ParseOptionalDate is ParseDate for optional fields; nil or empty yields nil.
func ParseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToInvoiceQuoteResponse converts a domain quote to its response DTO.
func ToInvoiceQuoteResponse(q *domain.InvoiceQuote) InvoiceQuoteResponse {
	return InvoiceQuoteResponse{
		PricingResult: q.Pricing,
		TaxRate:       q.TaxRate,
		IssueDate:     q.IssueDate.Format(DateLayout),
		DueDate:       q.DueDate.Format(DateLayout),
		PaymentTerm:   string(q.PaymentTerm),
		TermFellBack:  q.TermFellBack,
		Risk:          q.Risk,
	}
}
