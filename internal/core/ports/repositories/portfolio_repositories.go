package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
)

// PortfolioReader defines read operations for portfolio transaction history
type PortfolioReader interface {
	// ListPortfolioTransactions returns every transaction of a portfolio traded on or before until,
	// ordered by trade date and then insertion order.
	ListPortfolioTransactions(ctx context.Context, portfolioID string, until time.Time) ([]domain.PortfolioTransaction, error)
}

// PortfolioWriter defines write operations for portfolio transaction history
type PortfolioWriter interface {
	// SavePortfolioTransactions appends transactions to a portfolio atomically.
	// It returns apperrors.ErrDuplicate if any transaction ID already exists.
	SavePortfolioTransactions(ctx context.Context, portfolioID string, txns []domain.PortfolioTransaction) error
}

// PortfolioRepositoryFacade combines all portfolio repository interfaces
type PortfolioRepositoryFacade interface {
	PortfolioReader
	PortfolioWriter
}

// PortfolioRepositoryWithTx extends PortfolioRepositoryFacade with transaction capabilities
type PortfolioRepositoryWithTx interface {
	PortfolioRepositoryFacade
	TransactionManager
}
