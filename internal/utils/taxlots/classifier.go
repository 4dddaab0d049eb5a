// Package taxlots matches sales to purchase lots and classifies realized capital gains.
package taxlots

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
)

const (
	// DefaultLongTermThresholdDays is the holding period a lot must exceed to be long-term.
	DefaultLongTermThresholdDays = 365
	// DefaultWashSaleWindowDays is the distance either side of a loss sale scanned for repurchases.
	DefaultWashSaleWindowDays = 30
)

type options struct {
	longTermDays int
	washSaleDays int
}

// Option configures ClassifyGains.
type Option func(*options)

// WithLongTermThresholdDays overrides the long-term holding threshold. Non-positive values are ignored.
func WithLongTermThresholdDays(days int) Option {
	return func(o *options) {
		if days > 0 {
			o.longTermDays = days
		}
	}
}

// WithWashSaleWindowDays overrides the wash-sale window. Negative values are ignored.
func WithWashSaleWindowDays(days int) Option {
	return func(o *options) {
		if days >= 0 {
			o.washSaleDays = days
		}
	}
}

// buyRef locates a purchase in processing order for the wash-sale scan.
type buyRef struct {
	lotID string
	date  time.Time
	seq   int
}

type classifier struct {
	opts    options
	method  domain.CostBasisMethod
	books   map[string]*lotBook
	lots    map[string]*domain.Lot  // every lot created so far, open or closed
	buys    map[string][]buyRef     // per symbol, in trade-date order
	pending map[string]domain.Money // wash-sale adjustments for lots not bought yet
	report  *domain.CapitalGainsReport
}

// ClassifyGains replays buys and sells in trade-date order, matches each sale to open lots
// using method, and returns the realized gains with wash sales flagged.
//
// Dividend and interest rows are validated but otherwise ignored.
func ClassifyGains(txns []domain.PortfolioTransaction, method domain.CostBasisMethod, opts ...Option) (*domain.CapitalGainsReport, error) {
	switch method {
	case domain.CostBasisFIFO, domain.CostBasisLIFO, domain.CostBasisAverage, domain.CostBasisSpecificID:
	default:
		return nil, &apperrors.UnsupportedCostBasisMethodError{Method: string(method)}
	}

	o := options{longTermDays: DefaultLongTermThresholdDays, washSaleDays: DefaultWashSaleWindowDays}
	for _, opt := range opts {
		opt(&o)
	}

	trades, err := orderTrades(txns)
	if err != nil {
		return nil, err
	}

	c := &classifier{
		opts:    o,
		method:  method,
		books:   make(map[string]*lotBook),
		lots:    make(map[string]*domain.Lot),
		buys:    make(map[string][]buyRef),
		pending: make(map[string]domain.Money),
		report: &domain.CapitalGainsReport{
			Method:       method,
			Transactions: []domain.CapitalGainTransaction{},
			WashSales:    []domain.WashSaleAdjustment{},
		},
	}
	if err := c.indexBuys(trades); err != nil {
		return nil, err
	}

	for seq, tx := range trades {
		if tx.Type == domain.TxBuy {
			c.buy(tx)
			continue
		}
		if err := c.sell(seq, tx); err != nil {
			return nil, err
		}
	}

	c.report.OpenLots = c.openLots()
	c.report.Recalculate()
	return c.report, nil
}

// orderTrades validates every row, keeps buys and sells, normalizes symbol and date,
// and sorts by trade date while preserving input order within a day.
func orderTrades(txns []domain.PortfolioTransaction) ([]domain.PortfolioTransaction, error) {
	trades := make([]domain.PortfolioTransaction, 0, len(txns))
	for i, tx := range txns {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		if tx.Type != domain.TxBuy && tx.Type != domain.TxSell {
			continue
		}
		tx.Symbol = strings.ToUpper(strings.TrimSpace(tx.Symbol))
		tx.TradeDate = domain.DateOnly(tx.TradeDate)
		if tx.TransactionID == "" {
			tx.TransactionID = fmt.Sprintf("tx-%d", i+1)
		}
		trades = append(trades, tx)
	}
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].TradeDate.Before(trades[j].TradeDate)
	})
	return trades, nil
}

func (c *classifier) indexBuys(trades []domain.PortfolioTransaction) error {
	seen := make(map[string]bool)
	for seq, tx := range trades {
		if tx.Type != domain.TxBuy {
			continue
		}
		if seen[tx.TransactionID] {
			return apperrors.NewValidationError("transactionID", "duplicate buy %q", tx.TransactionID)
		}
		seen[tx.TransactionID] = true
		c.buys[tx.Symbol] = append(c.buys[tx.Symbol], buyRef{lotID: tx.TransactionID, date: tx.TradeDate, seq: seq})
	}
	return nil
}

func (c *classifier) book(symbol string) *lotBook {
	b, ok := c.books[symbol]
	if !ok {
		b = &lotBook{symbol: symbol}
		c.books[symbol] = b
	}
	return b
}

func (c *classifier) buy(tx domain.PortfolioTransaction) {
	lot := &domain.Lot{
		LotID:            tx.TransactionID,
		Symbol:           tx.Symbol,
		Quantity:         tx.Quantity,
		OriginalQuantity: tx.Quantity,
		PurchaseDate:     tx.TradeDate,
		PurchasePrice:    tx.Price,
		Fees:             tx.Fees,
		CostBasis:        domain.NewMoneyFromCents(tx.Price.MulDecimal(tx.Quantity)) + tx.Fees,
	}
	if adj, ok := c.pending[lot.LotID]; ok {
		lot.CostBasis += adj
		lot.WashSaleAdjustment += adj
		delete(c.pending, lot.LotID)
	}
	c.book(tx.Symbol).add(lot)
	c.lots[lot.LotID] = lot
}

func (c *classifier) sell(seq int, tx domain.PortfolioTransaction) error {
	fills, err := c.book(tx.Symbol).consume(c.method, tx)
	if err != nil {
		return err
	}

	proceeds := newAllocation(domain.NewMoneyFromCents(tx.Price.MulDecimal(tx.Quantity))-tx.Fees, tx.Quantity)
	consumed := make(map[string]bool, len(fills))
	first := len(c.report.Transactions)

	for _, f := range fills {
		consumed[f.lot.LotID] = true
		p := proceeds.take(f.quantity)
		held := domain.DaysBetween(f.lot.PurchaseDate, tx.TradeDate)
		c.report.Transactions = append(c.report.Transactions, domain.CapitalGainTransaction{
			SaleID:        tx.TransactionID,
			LotID:         f.lot.LotID,
			Symbol:        tx.Symbol,
			Quantity:      f.quantity,
			PurchaseDate:  f.lot.PurchaseDate,
			SaleDate:      tx.TradeDate,
			CostBasis:     f.cost,
			Proceeds:      p,
			GainLoss:      p - f.cost,
			HoldingPeriod: held,
			Term:          c.term(held),
		})
	}

	for i := first; i < len(c.report.Transactions); i++ {
		if g := &c.report.Transactions[i]; g.GainLoss.IsNegative() {
			c.applyWashSale(seq, g, consumed)
		}
	}
	return nil
}

func (c *classifier) term(heldDays int) domain.HoldingTerm {
	if heldDays > c.opts.longTermDays {
		return domain.LongTerm
	}
	return domain.ShortTerm
}

func (c *classifier) openLots() []domain.Lot {
	symbols := make([]string, 0, len(c.books))
	for s := range c.books {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	open := []domain.Lot{}
	for _, s := range symbols {
		for _, lot := range c.books[s].lots {
			if lot.Quantity.IsPositive() {
				open = append(open, *lot)
			}
		}
	}
	return open
}
