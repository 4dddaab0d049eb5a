package services

import (
	"context"
	"time"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/SscSPs/bizos_calc/internal/dto"
)

// PortfolioLedgerSvc defines write operations on portfolio history
type PortfolioLedgerSvc interface {
	// RecordTransactions validates and appends transactions to a portfolio.
	RecordTransactions(ctx context.Context, portfolioID string, txns []domain.PortfolioTransaction, userID string) ([]domain.PortfolioTransaction, error)
}

// CapitalGainsSvc defines capital-gains computation
type CapitalGainsSvc interface {
	// CapitalGains classifies the portfolio's sales dated within [from, to].
	CapitalGains(ctx context.Context, portfolioID string, method domain.CostBasisMethod, from, to time.Time) (*domain.CapitalGainsReport, error)
}

// TaxReportSvc defines tax report operations
type TaxReportSvc interface {
	// GenerateTaxReport computes and stores the tax summary of a portfolio for a tax year.
	GenerateTaxReport(ctx context.Context, portfolioID string, taxYear int, method domain.CostBasisMethod, userID string) (*domain.TaxReport, error)

	// GetTaxReport returns a stored report.
	GetTaxReport(ctx context.Context, reportID string) (*domain.TaxReport, error)

	// ListTaxReports returns a page of a portfolio's reports, newest first.
	ListTaxReports(ctx context.Context, portfolioID string, params dto.ListTaxReportsParams) (*dto.ListTaxReportsResponse, error)
}

// InvestmentReportingSvcFacade combines all investment reporting service interfaces
type InvestmentReportingSvcFacade interface {
	PortfolioLedgerSvc
	CapitalGainsSvc
	TaxReportSvc
}
