package dto

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PortfolioTransactionRequest is a single trade or income event to record.
type PortfolioTransactionRequest struct {
	TransactionID string          `json:"transactionID" binding:"omitempty,max=64"`
	Symbol        string          `json:"symbol" binding:"required_if=Type BUY,required_if=Type SELL,max=32"`
	Type          string          `json:"type" binding:"required,oneof=BUY SELL DIVIDEND INTEREST"`
	Quantity      decimal.Decimal `json:"quantity" binding:"decimal_nonneg"`
	Price         domain.Money    `json:"price" binding:"gte=0"`
	Fees          domain.Money    `json:"fees" binding:"gte=0"`
	Amount        domain.Money    `json:"amount" binding:"gte=0"`
	TradeDate     string          `json:"tradeDate" binding:"required,datetime=2006-01-02"`
	LotID         string          `json:"lotID,omitempty"`
	Qualified     bool            `json:"qualified"`
}

// RecordTransactionsRequest defines a batch of portfolio transactions.
type RecordTransactionsRequest struct {
	Transactions []PortfolioTransactionRequest `json:"transactions" binding:"required,min=1,max=1000,dive"`
}

// RecordTransactionsResponse lists what was stored.
type RecordTransactionsResponse struct {
	PortfolioID  string                        `json:"portfolioID"`
	Transactions []domain.PortfolioTransaction `json:"transactions"`
}

// CapitalGainsQuery holds the query parameters of a capital-gains request.
type CapitalGainsQuery struct {
	Method string `form:"method" binding:"omitempty,cost_basis_method"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// ToDomainTransactions converts request rows to domain transactions for a portfolio.
func ToDomainTransactions(portfolioID string, reqs []PortfolioTransactionRequest) ([]domain.PortfolioTransaction, error) {
	out := make([]domain.PortfolioTransaction, len(reqs))
	for i, r := range reqs {
		tradeDate, err := ParseDate(fmt.Sprintf("transactions[%d].tradeDate", i), r.TradeDate)
		if err != nil {
			return nil, err
		}
		out[i] = domain.PortfolioTransaction{
			TransactionID: r.TransactionID,
			PortfolioID:   portfolioID,
			Symbol:        strings.ToUpper(strings.TrimSpace(r.Symbol)),
			Type:          domain.PortfolioTransactionType(r.Type),
			Quantity:      r.Quantity,
			Price:         r.Price,
			Fees:          r.Fees,
			Amount:        r.Amount,
			TradeDate:     tradeDate,
			LotID:         r.LotID,
			Qualified:     r.Qualified,
		}
	}
	return out, nil
}
