package domain

import "github.com/shopspring/decimal"

// MarkupPricing is the input of an estimate priced by markup.
type MarkupPricing struct {
	BasePrice      Money           `json:"basePrice"`
	LaborRate      Money           `json:"laborRate"`
	EstimatedHours decimal.Decimal `json:"estimatedHours"`
	MaterialCosts  Money           `json:"materialCosts"`
	MarkupPercent  decimal.Decimal `json:"markupPercent"`
}

// MarkupPricingResult holds the priced estimate.
// Costs excludes BasePrice when computing the margin.
type MarkupPricingResult struct {
	Subtotal            Money           `json:"subtotal"`
	LaborCost           Money           `json:"laborCost"`
	Costs               Money           `json:"costs"`
	TotalWithMarkup     Money           `json:"totalWithMarkup"`
	Profit              Money           `json:"profit"`
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent"`
}
