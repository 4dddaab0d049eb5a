package services

import (
	portsrepo "github.com/SscSPs/bizos_calc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	invoiceOpts := []InvoiceServiceOption{WithTaxRounding(cfg.PricingTaxRounding)}
	if cfg.EnableRiskScoring {
		invoiceOpts = append(invoiceOpts, WithRiskScorer(NoopRiskScorer{}))
	}

	return &portssvc.ServiceContainer{
		Invoice:  NewInvoiceService(invoiceOpts...),
		Estimate: NewEstimateService(),
		InvestmentReporting: NewInvestmentReportingService(
			repos.PortfolioRepo,
			repos.TaxReportRepo,
			WithTaxYearConfig(cfg.TaxYearConfig()),
		),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InvoiceSvcFacade             = (*invoiceService)(nil)
	_ portssvc.EstimateSvcFacade            = (*estimateService)(nil)
	_ portssvc.InvestmentReportingSvcFacade = (*investmentReportingService)(nil)
)
