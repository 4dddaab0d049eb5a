package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portsrepo "github.com/SscSPs/bizos_calc/internal/core/ports/repositories"
	"github.com/patrickmn/go-cache"
)

// PortfolioRepository keeps each portfolio's history as one cache entry.
type PortfolioRepository struct {
	mu    sync.Mutex
	store *cache.Cache
}

var _ portsrepo.PortfolioRepositoryFacade = (*PortfolioRepository)(nil)

func newPortfolioRepository(store *cache.Cache) *PortfolioRepository {
	return &PortfolioRepository{store: store}
}

// SavePortfolioTransactions appends txns unless any of their IDs is already stored.
func (r *PortfolioRepository) SavePortfolioTransactions(_ context.Context, portfolioID string, txns []domain.PortfolioTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.load(portfolioID)
	ids := make(map[string]struct{}, len(existing)+len(txns))
	for _, t := range existing {
		ids[t.TransactionID] = struct{}{}
	}
	for _, t := range txns {
		if _, dup := ids[t.TransactionID]; dup {
			return fmt.Errorf("%w: transaction %s in portfolio %s", apperrors.ErrDuplicate, t.TransactionID, portfolioID)
		}
		ids[t.TransactionID] = struct{}{}
	}

	updated := make([]domain.PortfolioTransaction, 0, len(existing)+len(txns))
	updated = append(updated, existing...)
	updated = append(updated, txns...)
	r.store.Set(portfolioKey(portfolioID), updated, cache.DefaultExpiration)
	return nil
}

// ListPortfolioTransactions returns a copy of the history traded on or before until.
// Same-day transactions keep their insertion order.
func (r *PortfolioRepository) ListPortfolioTransactions(_ context.Context, portfolioID string, until time.Time) ([]domain.PortfolioTransaction, error) {
	r.mu.Lock()
	existing := r.load(portfolioID)
	r.mu.Unlock()

	cutoff := domain.DateOnly(until)
	out := make([]domain.PortfolioTransaction, 0, len(existing))
	for _, t := range existing {
		if !t.TradeDate.After(cutoff) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TradeDate.Before(out[j].TradeDate)
	})
	return out, nil
}

func (r *PortfolioRepository) load(portfolioID string) []domain.PortfolioTransaction {
	if v, found := r.store.Get(portfolioKey(portfolioID)); found {
		return v.([]domain.PortfolioTransaction)
	}
	return nil
}

func portfolioKey(portfolioID string) string {
	return "portfolio:" + portfolioID
}
