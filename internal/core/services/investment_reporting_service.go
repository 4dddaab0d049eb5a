package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizos_calc/internal/apperrors"
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portsrepo "github.com/SscSPs/bizos_calc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/dto"
	"github.com/SscSPs/bizos_calc/internal/utils/pagination"
	"github.com/SscSPs/bizos_calc/internal/utils/taxlots"
	"github.com/SscSPs/bizos_calc/internal/utils/taxreport"
	"github.com/google/uuid"
)

// investmentReportingService implements the InvestmentReportingSvcFacade interface
type investmentReportingService struct {
	BaseService
	portfolioRepo portsrepo.PortfolioRepositoryFacade
	taxReportRepo portsrepo.TaxReportRepositoryFacade
	taxConfig     domain.TaxYearConfig
	now           func() time.Time
	newID         func() string
}

// InvestmentReportingServiceOption is a functional option for configuring the investment reporting service
type InvestmentReportingServiceOption func(*investmentReportingService)

// WithTaxYearConfig sets the jurisdiction constants. TaxYear is replaced by the requested year.
func WithTaxYearConfig(cfg domain.TaxYearConfig) InvestmentReportingServiceOption {
	return func(s *investmentReportingService) {
		s.taxConfig = cfg
	}
}

// WithClock overrides the time source used for audit fields and open-ended ranges.
func WithClock(now func() time.Time) InvestmentReportingServiceOption {
	return func(s *investmentReportingService) {
		s.now = now
	}
}

// WithIDGenerator overrides how report and transaction IDs are generated.
func WithIDGenerator(newID func() string) InvestmentReportingServiceOption {
	return func(s *investmentReportingService) {
		s.newID = newID
	}
}

// NewInvestmentReportingService creates a new investment reporting service with the provided options
func NewInvestmentReportingService(
	portfolioRepo portsrepo.PortfolioRepositoryFacade,
	taxReportRepo portsrepo.TaxReportRepositoryFacade,
	options ...InvestmentReportingServiceOption,
) portssvc.InvestmentReportingSvcFacade {
	svc := &investmentReportingService{
		portfolioRepo: portfolioRepo,
		taxReportRepo: taxReportRepo,
		taxConfig:     domain.DefaultUSTaxYearConfig(time.Now().Year()),
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// RecordTransactions validates the batch and stores it. Symbols are uppercased and
// transactions without an ID get a generated one.
func (s *investmentReportingService) RecordTransactions(ctx context.Context, portfolioID string, txns []domain.PortfolioTransaction, userID string) ([]domain.PortfolioTransaction, error) {
	if strings.TrimSpace(portfolioID) == "" {
		return nil, apperrors.NewValidationError("portfolioID", "is required")
	}
	if len(txns) == 0 {
		return nil, apperrors.NewValidationError("transactions", "at least one transaction is required")
	}

	audit := domain.NewAuditFields(userID, s.now())
	seen := make(map[string]bool, len(txns))
	stored := make([]domain.PortfolioTransaction, len(txns))
	for i, tx := range txns {
		tx.PortfolioID = portfolioID
		tx.Symbol = strings.ToUpper(strings.TrimSpace(tx.Symbol))
		tx.TradeDate = domain.DateOnly(tx.TradeDate)
		if tx.TransactionID == "" {
			tx.TransactionID = s.newID()
		}
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		if seen[tx.TransactionID] {
			return nil, apperrors.NewValidationError("transactionID", "%q appears more than once in the batch", tx.TransactionID)
		}
		seen[tx.TransactionID] = true
		tx.AuditFields = audit
		stored[i] = tx
	}

	if err := s.portfolioRepo.SavePortfolioTransactions(ctx, portfolioID, stored); err != nil {
		s.LogError(ctx, err, "Failed to save portfolio transactions",
			slog.String("portfolio_id", portfolioID),
			slog.Int("count", len(stored)))
		return nil, fmt.Errorf("failed to save portfolio transactions: %w", err)
	}

	s.LogInfo(ctx, "Portfolio transactions recorded",
		slog.String("portfolio_id", portfolioID),
		slog.Int("count", len(stored)))
	return stored, nil
}

// CapitalGains classifies the portfolio's full history and keeps the pairs whose sale falls
// in [from, to]. Buys up to one wash-sale window after to are loaded so that replacements
// bought just after the range are detected. A zero to means today.
func (s *investmentReportingService) CapitalGains(ctx context.Context, portfolioID string, method domain.CostBasisMethod, from, to time.Time) (*domain.CapitalGainsReport, error) {
	if to.IsZero() {
		to = s.now()
	}
	if !from.IsZero() && domain.DateOnly(from).After(domain.DateOnly(to)) {
		return nil, apperrors.NewValidationError("from", "must not be after to")
	}

	gains, _, err := s.classify(ctx, portfolioID, method, s.taxConfig, to)
	if err != nil {
		return nil, err
	}

	report := gains.SalesBetween(from, to)
	s.LogInfo(ctx, "Capital gains computed",
		slog.String("portfolio_id", portfolioID),
		slog.String("method", string(report.Method)),
		slog.Int("pairs", len(report.Transactions)),
		slog.String("net", report.NetCapitalGain.String()))
	return report, nil
}

// GenerateTaxReport builds and stores the tax summary of portfolioID for taxYear.
// OpenLots in the stored report are the holdings at the end of the year.
func (s *investmentReportingService) GenerateTaxReport(ctx context.Context, portfolioID string, taxYear int, method domain.CostBasisMethod, userID string) (*domain.TaxReport, error) {
	cfg := s.taxConfig
	cfg.TaxYear = taxYear
	from, to := cfg.YearBounds()

	gains, txns, err := s.classify(ctx, portfolioID, method, cfg, to)
	if err != nil {
		return nil, err
	}
	yearGains := gains.SalesBetween(from, to)
	dividends, interest := domain.IncomeBetween(txns, from, to)
	summary := taxreport.BuildTaxSummary(yearGains, dividends, interest, cfg)

	report := domain.TaxReport{
		ReportID:    s.newID(),
		PortfolioID: portfolioID,
		TaxYear:     taxYear,
		Method:      yearGains.Method,
		Summary:     summary,
		Gains:       *yearGains,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}

	if err := s.taxReportRepo.SaveTaxReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save tax report",
			slog.String("portfolio_id", portfolioID),
			slog.Int("tax_year", taxYear))
		return nil, fmt.Errorf("failed to save tax report: %w", err)
	}

	s.LogInfo(ctx, "Tax report generated",
		slog.String("report_id", report.ReportID),
		slog.String("portfolio_id", portfolioID),
		slog.Int("tax_year", taxYear),
		slog.String("estimated_liability", summary.EstimatedTaxLiability.String()))
	return &report, nil
}

// GetTaxReport returns a stored report.
func (s *investmentReportingService) GetTaxReport(ctx context.Context, reportID string) (*domain.TaxReport, error) {
	report, err := s.taxReportRepo.FindTaxReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListTaxReports returns a page of reports, newest first.
func (s *investmentReportingService) ListTaxReports(ctx context.Context, portfolioID string, params dto.ListTaxReportsParams) (*dto.ListTaxReportsResponse, error) {
	limit := pagination.ClampLimit(params.Limit)

	reports, nextToken, err := s.taxReportRepo.ListTaxReportsByPortfolio(ctx, portfolioID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax reports", slog.String("portfolio_id", portfolioID))
		return nil, err
	}

	return &dto.ListTaxReportsResponse{
		Reports:   dto.ToTaxReportResponses(reports),
		NextToken: nextToken,
	}, nil
}

// classify loads history up to through + the wash-sale window and matches lots.
// An empty method means FIFO.
func (s *investmentReportingService) classify(ctx context.Context, portfolioID string, method domain.CostBasisMethod, cfg domain.TaxYearConfig, through time.Time) (*domain.CapitalGainsReport, []domain.PortfolioTransaction, error) {
	if strings.TrimSpace(portfolioID) == "" {
		return nil, nil, apperrors.NewValidationError("portfolioID", "is required")
	}
	if method == "" {
		method = domain.CostBasisFIFO
	}

	until := domain.DateOnly(through).AddDate(0, 0, cfg.WashSaleWindowDays)
	txns, err := s.portfolioRepo.ListPortfolioTransactions(ctx, portfolioID, until)
	if err != nil {
		s.LogError(ctx, err, "Failed to load portfolio transactions", slog.String("portfolio_id", portfolioID))
		return nil, nil, fmt.Errorf("failed to load portfolio transactions: %w", err)
	}

	gains, err := taxlots.ClassifyGains(heldThrough(txns, through), method,
		taxlots.WithLongTermThresholdDays(cfg.LongTermThresholdDays),
		taxlots.WithWashSaleWindowDays(cfg.WashSaleWindowDays))
	if err != nil {
		s.LogWarn(ctx, "Capital gains classification failed",
			slog.String("portfolio_id", portfolioID),
			slog.String("method", string(method)),
			slog.String("error", err.Error()))
		return nil, nil, err
	}
	return gains, txns, nil
}

// heldThrough drops sales dated after through. Later buys stay so wash-sale replacements
// in the look-ahead window are still seen.
func heldThrough(txns []domain.PortfolioTransaction, through time.Time) []domain.PortfolioTransaction {
	through = domain.DateOnly(through)
	out := make([]domain.PortfolioTransaction, 0, len(txns))
	for _, tx := range txns {
		if tx.Type == domain.TxSell && domain.DateOnly(tx.TradeDate).After(through) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
