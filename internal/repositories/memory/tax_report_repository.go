package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portsrepo "github.com/SscSPs/bizos_calc/internal/core/ports/repositories"
	"github.com/SscSPs/bizos_calc/internal/utils/pagination"
	"github.com/patrickmn/go-cache"
)

const taxReportKeyPrefix = "tax_report:"

// TaxReportRepository stores generated reports keyed by report ID.
type TaxReportRepository struct {
	store *cache.Cache
}

var _ portsrepo.TaxReportRepositoryFacade = (*TaxReportRepository)(nil)

func newTaxReportRepository(store *cache.Cache) *TaxReportRepository {
	return &TaxReportRepository{store: store}
}

func (r *TaxReportRepository) SaveTaxReport(_ context.Context, report domain.TaxReport) error {
	// Add fails when the key is present and unexpired.
	if err := r.store.Add(taxReportKeyPrefix+report.ReportID, report, cache.DefaultExpiration); err != nil {
		return fmt.Errorf("%w: tax report %s", apperrors.ErrDuplicate, report.ReportID)
	}
	return nil
}

func (r *TaxReportRepository) FindTaxReportByID(_ context.Context, reportID string) (*domain.TaxReport, error) {
	v, found := r.store.Get(taxReportKeyPrefix + reportID)
	if !found {
		return nil, apperrors.NewNotFoundError("tax report " + reportID)
	}
	report := v.(domain.TaxReport)
	return &report, nil
}

// ListTaxReportsByPortfolio pages through a portfolio's reports, newest first.
func (r *TaxReportRepository) ListTaxReportsByPortfolio(_ context.Context, portfolioID string, limit int, nextToken *string) ([]domain.TaxReport, *string, error) {
	limit = pagination.ClampLimit(limit)

	var reports []domain.TaxReport
	for key, item := range r.store.Items() {
		if !strings.HasPrefix(key, taxReportKeyPrefix) {
			continue
		}
		if report := item.Object.(domain.TaxReport); report.PortfolioID == portfolioID {
			reports = append(reports, report)
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		return pagination.IsAfter(reports[j].CreatedAt, reports[j].ReportID, reports[i].CreatedAt, reports[i].ReportID)
	})

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		start := len(reports)
		for i, report := range reports {
			if pagination.IsAfter(report.CreatedAt, report.ReportID, lastCreatedAt, lastID) {
				start = i
				break
			}
		}
		reports = reports[start:]
	}

	var next *string
	if len(reports) > limit {
		reports = reports[:limit]
		last := reports[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ReportID)
		next = &token
	}
	return reports, next, nil
}
