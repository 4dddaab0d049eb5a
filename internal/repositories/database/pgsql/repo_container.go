package pgsql

import (
	portsrepo "github.com/SscSPs/bizos_calc/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PortfolioRepo: newPgxPortfolioRepository(dbPool),
		TaxReportRepo: newPgxTaxReportRepository(dbPool),
	}
}
