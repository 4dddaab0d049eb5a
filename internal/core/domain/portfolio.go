package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PortfolioTransactionType indicates what a portfolio transaction represents.
type PortfolioTransactionType string

const (
	TxBuy      PortfolioTransactionType = "BUY"
	TxSell     PortfolioTransactionType = "SELL"
	TxDividend PortfolioTransactionType = "DIVIDEND"
	TxInterest PortfolioTransactionType = "INTEREST"
)

// PortfolioTransaction is a single trade or income event in a portfolio.
type PortfolioTransaction struct {
	TransactionID string                   `json:"transactionID"`
	PortfolioID   string                   `json:"portfolioID"`
	Symbol        string                   `json:"symbol"`
	Type          PortfolioTransactionType `json:"type"`
	Quantity      decimal.Decimal          `json:"quantity"`        // units traded; zero for income
	Price         Money                    `json:"price"`           // per unit
	Fees          Money                    `json:"fees"`            // commissions paid on the trade
	Amount        Money                    `json:"amount"`          // income amount for dividends and interest
	TradeDate     time.Time                `json:"tradeDate"`       // UTC calendar date
	LotID         string                   `json:"lotID,omitempty"` // lot to consume for specific-ID sells
	Qualified     bool                     `json:"qualified"`       // qualified dividend
	AuditFields
}

// Validate checks the transaction is internally consistent.
func (t PortfolioTransaction) Validate() error {
	switch t.Type {
	case TxBuy, TxSell:
		if strings.TrimSpace(t.Symbol) == "" {
			return apperrors.NewValidationError("symbol", "is required for %s transactions", t.Type)
		}
		if !t.Quantity.IsPositive() {
			return apperrors.NewValidationError("quantity", "must be positive, got %s", t.Quantity.String())
		}
		if t.Price.IsNegative() {
			return apperrors.NewValidationError("price", "must not be negative, got %s", t.Price.String())
		}
		if t.Fees.IsNegative() {
			return apperrors.NewValidationError("fees", "must not be negative, got %s", t.Fees.String())
		}
	case TxDividend, TxInterest:
		if t.Amount.IsNegative() {
			return apperrors.NewValidationError("amount", "must not be negative, got %s", t.Amount.String())
		}
	default:
		return apperrors.NewValidationError("type", "unknown transaction type %q", t.Type)
	}
	if t.TradeDate.IsZero() {
		return apperrors.NewValidationError("tradeDate", "is required")
	}
	return nil
}

// CostBasisMethod selects how sold units are matched to purchase lots.
type CostBasisMethod string

const (
	CostBasisFIFO       CostBasisMethod = "fifo"
	CostBasisLIFO       CostBasisMethod = "lifo"
	CostBasisAverage    CostBasisMethod = "average"
	CostBasisSpecificID CostBasisMethod = "specific_id"
)

// ParseCostBasisMethod accepts the canonical names and common aliases.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return CostBasisFIFO, nil
	case "lifo":
		return CostBasisLIFO, nil
	case "average", "average_cost", "avg":
		return CostBasisAverage, nil
	case "specific_id", "specific-id", "specific":
		return CostBasisSpecificID, nil
	}
	return "", &apperrors.UnsupportedCostBasisMethodError{Method: s}
}

// Lot is an open purchase position of a symbol.
type Lot struct {
	LotID              string          `json:"lotID"`
	Symbol             string          `json:"symbol"`
	Quantity           decimal.Decimal `json:"quantity"` // remaining
	OriginalQuantity   decimal.Decimal `json:"originalQuantity"`
	PurchaseDate       time.Time       `json:"purchaseDate"`
	PurchasePrice      Money           `json:"purchasePrice"`
	Fees               Money           `json:"fees"`
	CostBasis          Money           `json:"costBasis"` // remaining, including fees and wash-sale adjustments
	WashSaleAdjustment Money           `json:"washSaleAdjustment"`
}

// HoldingTerm is the capital-gain holding period classification.
type HoldingTerm string

const (
	ShortTerm HoldingTerm = "SHORT_TERM"
	LongTerm  HoldingTerm = "LONG_TERM"
)

// CapitalGainTransaction is one matched (purchase lot, sale) pair.
// GainLoss always equals Proceeds − CostBasis.
type CapitalGainTransaction struct {
	SaleID         string          `json:"saleID"`
	LotID          string          `json:"lotID"`
	Symbol         string          `json:"symbol"`
	Quantity       decimal.Decimal `json:"quantity"`
	PurchaseDate   time.Time       `json:"purchaseDate"`
	SaleDate       time.Time       `json:"saleDate"`
	CostBasis      Money           `json:"costBasis"`
	Proceeds       Money           `json:"proceeds"`
	GainLoss       Money           `json:"gainLoss"`
	HoldingPeriod  int             `json:"holdingPeriod"` // days
	Term           HoldingTerm     `json:"term"`
	IsWashSale     bool            `json:"isWashSale"`
	DisallowedLoss Money           `json:"disallowedLoss"` // positive magnitude
}

// WashSaleAdjustment records a disallowed loss moved into a replacement lot.
type WashSaleAdjustment struct {
	SaleID           string    `json:"saleID"`
	LotID            string    `json:"lotID"` // lot that produced the loss
	ReplacementLotID string    `json:"replacementLotID"`
	Symbol           string    `json:"symbol"`
	SaleDate         time.Time `json:"saleDate"`
	DisallowedLoss   Money     `json:"disallowedLoss"` // positive magnitude
}

// CapitalGainsReport is the output of lot matching.
// NetCapitalGain = ShortTermTotal + LongTermTotal − WashSalesAdjustment, where
// WashSalesAdjustment is the (non-positive) sum of the washed pairs' GainLoss.
type CapitalGainsReport struct {
	Method              CostBasisMethod          `json:"method"`
	Transactions        []CapitalGainTransaction `json:"transactions"`
	WashSales           []WashSaleAdjustment     `json:"washSales"`
	OpenLots            []Lot                    `json:"openLots"`
	ShortTermTotal      Money                    `json:"shortTermTotal"`
	LongTermTotal       Money                    `json:"longTermTotal"`
	WashSalesAdjustment Money                    `json:"washSalesAdjustment"`
	NetCapitalGain      Money                    `json:"netCapitalGain"`
}

// Recalculate rebuilds the aggregate totals from Transactions.
func (r *CapitalGainsReport) Recalculate() {
	r.ShortTermTotal, r.LongTermTotal, r.WashSalesAdjustment = 0, 0, 0
	for _, g := range r.Transactions {
		if g.Term == LongTerm {
			r.LongTermTotal += g.GainLoss
		} else {
			r.ShortTermTotal += g.GainLoss
		}
		if g.IsWashSale {
			r.WashSalesAdjustment += g.GainLoss
		}
	}
	r.NetCapitalGain = r.ShortTermTotal + r.LongTermTotal - r.WashSalesAdjustment
}

// AllowedTermTotals returns short- and long-term totals with washed losses excluded.
func (r *CapitalGainsReport) AllowedTermTotals() (shortTerm, longTerm Money) {
	for _, g := range r.Transactions {
		if g.IsWashSale {
			continue
		}
		if g.Term == LongTerm {
			longTerm += g.GainLoss
		} else {
			shortTerm += g.GainLoss
		}
	}
	return shortTerm, longTerm
}

// SalesBetween returns a copy of the report restricted to sales dated within [from, to],
// with totals recalculated. Only open lots purchased on or before to are kept.
func (r *CapitalGainsReport) SalesBetween(from, to time.Time) *CapitalGainsReport {
	from, to = DateOnly(from), DateOnly(to)
	inRange := func(d time.Time) bool {
		return !d.Before(from) && !d.After(to)
	}

	out := &CapitalGainsReport{
		Method:       r.Method,
		Transactions: []CapitalGainTransaction{},
		WashSales:    []WashSaleAdjustment{},
		OpenLots:     []Lot{},
	}
	for _, g := range r.Transactions {
		if inRange(g.SaleDate) {
			out.Transactions = append(out.Transactions, g)
		}
	}
	for _, w := range r.WashSales {
		if inRange(w.SaleDate) {
			out.WashSales = append(out.WashSales, w)
		}
	}
	for _, l := range r.OpenLots {
		if !DateOnly(l.PurchaseDate).After(to) {
			out.OpenLots = append(out.OpenLots, l)
		}
	}
	out.Recalculate()
	return out
}

// IncomeBetween sums dividend and interest income dated within [from, to].
func IncomeBetween(txns []PortfolioTransaction, from, to time.Time) (DividendIncome, Money) {
	from, to = DateOnly(from), DateOnly(to)
	var dividends DividendIncome
	var interest Money
	for _, tx := range txns {
		d := DateOnly(tx.TradeDate)
		if d.Before(from) || d.After(to) {
			continue
		}
		switch tx.Type {
		case TxDividend:
			if tx.Qualified {
				dividends.Qualified += tx.Amount
			} else {
				dividends.Ordinary += tx.Amount
			}
		case TxInterest:
			interest += tx.Amount
		}
	}
	return dividends, interest
}
