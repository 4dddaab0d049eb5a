package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LineItemKind classifies a line on an invoice or estimate.
type LineItemKind string

const (
	LineItemService  LineItemKind = "service"
	LineItemPart     LineItemKind = "part"
	LineItemLabor    LineItemKind = "labor"
	LineItemMaterial LineItemKind = "material"
	LineItemTax      LineItemKind = "tax"
	LineItemDiscount LineItemKind = "discount"
	LineItemFee      LineItemKind = "fee"
)

// IsValid reports whether k is one of the known kinds.
func (k LineItemKind) IsValid() bool {
	switch k {
	case LineItemService, LineItemPart, LineItemLabor, LineItemMaterial,
		LineItemTax, LineItemDiscount, LineItemFee:
		return true
	}
	return false
}

// LineItem is a single priced line.
type LineItem struct {
	ID             string           `json:"id"`
	Kind           LineItemKind     `json:"kind"`
	Description    string           `json:"description,omitempty"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitPrice      Money            `json:"unitPrice"`
	IsTaxable      *bool            `json:"isTaxable,omitempty"`      // nil means taxable
	TaxRate        *decimal.Decimal `json:"taxRate,omitempty"`        // overrides the document rate
	DiscountAmount *Money           `json:"discountAmount,omitempty"` // discount lines only
}

// TotalPrice is quantity × unit price, rounded half-even to cents.
func (li LineItem) TotalPrice() Money {
	return NewMoneyFromCents(li.UnitPrice.MulDecimal(li.Quantity))
}

// Taxable reports whether the item is taxable; unset means taxable.
func (li LineItem) Taxable() bool {
	return li.IsTaxable == nil || *li.IsTaxable
}

// PricingResult holds the totals of a set of line items.
// TotalAmount = Subtotal + TotalTax + TotalFees − TotalDiscounts, and is not clamped at zero.
type PricingResult struct {
	Subtotal       Money `json:"subtotal"`
	TaxableAmount  Money `json:"taxableAmount"`
	TotalTax       Money `json:"totalTax"`
	TotalDiscounts Money `json:"totalDiscounts"`
	TotalFees      Money `json:"totalFees"`
	TotalAmount    Money `json:"totalAmount"`
}

// PaymentTerm maps to a due-date offset.
type PaymentTerm string

const (
	PaymentTermDueOnReceipt PaymentTerm = "due_on_receipt"
	PaymentTermNet15        PaymentTerm = "net_15"
	PaymentTermNet30        PaymentTerm = "net_30"
	PaymentTermNet60        PaymentTerm = "net_60"
	PaymentTermCustom       PaymentTerm = "custom"
)

// DefaultPaymentTerm is applied when a term is not recognized.
const DefaultPaymentTerm = PaymentTermNet30

var paymentTermOffsets = map[PaymentTerm]int{
	PaymentTermDueOnReceipt: 0,
	PaymentTermNet15:        15,
	PaymentTermNet30:        30,
	PaymentTermNet60:        60,
}

// OffsetDays returns the number of days after issue for fixed terms.
// ok is false for custom and unknown terms.
func (t PaymentTerm) OffsetDays() (days int, ok bool) {
	days, ok = paymentTermOffsets[t]
	return days, ok
}

// IsKnown reports whether t is one of the supported terms.
func (t PaymentTerm) IsKnown() bool {
	if t == PaymentTermCustom {
		return true
	}
	_, ok := paymentTermOffsets[t]
	return ok
}

// ParsePaymentTerm normalizes loose spellings such as "Net 30", "net-30" or "DUE ON RECEIPT".
// The result may still be unknown; callers check IsKnown.
func ParsePaymentTerm(s string) PaymentTerm {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	return PaymentTerm(norm)
}

// InvoiceQuote is the priced result of an invoice draft.
type InvoiceQuote struct {
	Pricing      PricingResult   `json:"pricing"`
	IssueDate    time.Time       `json:"issueDate"`
	DueDate      time.Time       `json:"dueDate"`
	PaymentTerm  PaymentTerm     `json:"paymentTerm"`
	TermFellBack bool            `json:"termFellBack"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	Risk         *RiskAssessment `json:"risk,omitempty"`
}

// RiskAssessment is produced by a pluggable RiskScorer.
type RiskAssessment struct {
	Score  decimal.Decimal `json:"score"` // 0 (no risk) to 1
	Flags  []string        `json:"flags,omitempty"`
	Scorer string          `json:"scorer"`
}
