package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portsrepo "github.com/SscSPs/bizos_calc/internal/core/ports/repositories"
	"github.com/SscSPs/bizos_calc/internal/models"
	"github.com/SscSPs/bizos_calc/internal/utils/mapping"
	"github.com/SscSPs/bizos_calc/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taxReportColumns = `report_id, portfolio_id, tax_year, method, summary, gains,
		       created_at, created_by, last_updated_at, last_updated_by`

type PgxTaxReportRepository struct {
	BaseRepository
}

// newPgxTaxReportRepository creates a new repository for generated tax reports.
func newPgxTaxReportRepository(pool *pgxpool.Pool) portsrepo.TaxReportRepositoryFacade {
	return &PgxTaxReportRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaxReportRepositoryFacade = (*PgxTaxReportRepository)(nil)

// SaveTaxReport persists a new report.
func (r *PgxTaxReportRepository) SaveTaxReport(ctx context.Context, report domain.TaxReport) error {
	m, err := mapping.ToModelTaxReport(report)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode tax report "+report.ReportID, err)
	}

	query := `
		INSERT INTO tax_reports (` + taxReportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ReportID,
		m.PortfolioID,
		m.TaxYear,
		m.Method,
		m.Summary,
		m.Gains,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: tax report %s", apperrors.ErrDuplicate, m.ReportID)
		}
		return apperrors.NewAppError(500, "failed to insert tax report "+m.ReportID, err)
	}
	return nil
}

// FindTaxReportByID retrieves a report by its ID.
func (r *PgxTaxReportRepository) FindTaxReportByID(ctx context.Context, reportID string) (*domain.TaxReport, error) {
	query := `SELECT ` + taxReportColumns + ` FROM tax_reports WHERE report_id = $1;`

	rows, err := r.Pool.Query(ctx, query, reportID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax report "+reportID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.TaxReport])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("tax report " + reportID)
		}
		return nil, apperrors.NewAppError(500, "failed to scan tax report "+reportID, err)
	}

	report, err := mapping.ToDomainTaxReport(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode tax report "+reportID, err)
	}
	return &report, nil
}

// ListTaxReportsByPortfolio returns reports newest first using cursor pagination.
func (r *PgxTaxReportRepository) ListTaxReportsByPortfolio(ctx context.Context, portfolioID string, limit int, nextToken *string) ([]domain.TaxReport, *string, error) {
	limit = pagination.ClampLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	args := []any{portfolioID}
	query := `SELECT ` + taxReportColumns + ` FROM tax_reports WHERE portfolio_id = $1`
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += ` AND (created_at, report_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, report_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query tax reports for portfolio "+portfolioID, err)
	}
	modelReports, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TaxReport])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan tax reports for portfolio "+portfolioID, err)
	}

	var next *string
	if len(modelReports) > limit {
		modelReports = modelReports[:limit]
		last := modelReports[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ReportID)
		next = &token
	}

	reports := make([]domain.TaxReport, len(modelReports))
	for i, m := range modelReports {
		if reports[i], err = mapping.ToDomainTaxReport(m); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to decode tax report "+m.ReportID, err)
		}
	}
	return reports, next, nil
}
