package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioTransaction is a row of portfolio_transactions.
// Money columns hold integer cents.
type PortfolioTransaction struct {
	PortfolioID   string          `db:"portfolio_id"`
	TransactionID string          `db:"transaction_id"`
	Seq           int64           `db:"seq"` // insertion order, breaks trade-date ties
	Symbol        string          `db:"symbol"`
	Type          string          `db:"tx_type"`
	Quantity      decimal.Decimal `db:"quantity"`
	PriceCents    int64           `db:"price_cents"`
	FeesCents     int64           `db:"fees_cents"`
	AmountCents   int64           `db:"amount_cents"`
	TradeDate     time.Time       `db:"trade_date"`
	LotID         *string         `db:"lot_id"`
	Qualified     bool            `db:"qualified"`
	AuditFields
}
