package repositories

import (
	"context"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
)

// TaxReportReader defines read operations for generated tax reports
type TaxReportReader interface {
	// FindTaxReportByID retrieves a report by its unique identifier.
	FindTaxReportByID(ctx context.Context, reportID string) (*domain.TaxReport, error)

	// ListTaxReportsByPortfolio retrieves a page of reports for a portfolio, newest first,
	// and a token for the next page.
	ListTaxReportsByPortfolio(ctx context.Context, portfolioID string, limit int, nextToken *string) ([]domain.TaxReport, *string, error)
}

// TaxReportWriter defines write operations for generated tax reports
type TaxReportWriter interface {
	SaveTaxReport(ctx context.Context, report domain.TaxReport) error
}

// TaxReportRepositoryFacade combines all tax report repository interfaces
type TaxReportRepositoryFacade interface {
	TaxReportReader
	TaxReportWriter
}
