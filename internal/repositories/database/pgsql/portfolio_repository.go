package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portsrepo "github.com/SscSPs/bizos_calc/internal/core/ports/repositories"
	"github.com/SscSPs/bizos_calc/internal/models"
	"github.com/SscSPs/bizos_calc/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type PgxPortfolioRepository struct {
	BaseRepository
}

// newPgxPortfolioRepository creates a new repository for portfolio transaction history.
func newPgxPortfolioRepository(pool *pgxpool.Pool) portsrepo.PortfolioRepositoryWithTx {
	return &PgxPortfolioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PortfolioRepositoryWithTx = (*PgxPortfolioRepository)(nil)

// SavePortfolioTransactions inserts the batch in one database transaction.
func (r *PgxPortfolioRepository) SavePortfolioTransactions(ctx context.Context, portfolioID string, txns []domain.PortfolioTransaction) error {
	query := `
		INSERT INTO portfolio_transactions (
			portfolio_id, transaction_id, symbol, tx_type, quantity,
			price_cents, fees_cents, amount_cents, trade_date, lot_id, qualified,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	batch := &pgx.Batch{}
	for _, t := range txns {
		m := mapping.ToModelPortfolioTransaction(t)
		batch.Queue(query,
			portfolioID,
			m.TransactionID,
			m.Symbol,
			m.Type,
			m.Quantity,
			m.PriceCents,
			m.FeesCents,
			m.AmountCents,
			m.TradeDate,
			m.LotID,
			m.Qualified,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return fmt.Errorf("%w: portfolio %s already has a transaction from this batch", apperrors.ErrDuplicate, portfolioID)
			}
			return apperrors.NewAppError(500, "failed to insert transactions for portfolio "+portfolioID, err)
		}
		return nil
	})
}

// ListPortfolioTransactions returns the portfolio's history traded on or before until.
func (r *PgxPortfolioRepository) ListPortfolioTransactions(ctx context.Context, portfolioID string, until time.Time) ([]domain.PortfolioTransaction, error) {
	query := `
		SELECT portfolio_id, transaction_id, seq, symbol, tx_type, quantity,
		       price_cents, fees_cents, amount_cents, trade_date, lot_id, qualified,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM portfolio_transactions
		WHERE portfolio_id = $1 AND trade_date <= $2
		ORDER BY trade_date, seq;
	`
	rows, err := r.Pool.Query(ctx, query, portfolioID, domain.DateOnly(until))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for portfolio "+portfolioID, err)
	}

	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PortfolioTransaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions for portfolio "+portfolioID, err)
	}

	txns := make([]domain.PortfolioTransaction, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = mapping.ToDomainPortfolioTransaction(m)
	}
	return txns, nil
}
