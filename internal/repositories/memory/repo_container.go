package memory

import (
	"time"

	portsrepo "github.com/SscSPs/bizos_calc/internal/core/ports/repositories"
	"github.com/patrickmn/go-cache"
)

// NewRepositoryProvider wires in-process repositories. Portfolio history never expires; stored
// tax reports expire after reportTTL, and zero keeps them forever.
func NewRepositoryProvider(reportTTL time.Duration) portsrepo.RepositoryProvider {
	expiration, cleanup := cache.NoExpiration, time.Duration(0)
	if reportTTL > 0 {
		expiration, cleanup = reportTTL, 2*reportTTL
	}
	return portsrepo.RepositoryProvider{
		PortfolioRepo: newPortfolioRepository(cache.New(cache.NoExpiration, 0)),
		TaxReportRepo: newTaxReportRepository(cache.New(expiration, cleanup)),
	}
}
