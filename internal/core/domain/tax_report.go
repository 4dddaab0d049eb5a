package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateDisclaimer labels every estimated tax figure returned to callers.
const EstimateDisclaimer = "Estimated tax liability uses flat per-category rates and ignores brackets, " +
	"deductions and credits. It is an estimate, not a filing-grade calculation."

// TaxYearConfig carries the jurisdiction- and year-specific constants used by the
// capital-gains classifier and the tax summary.
type TaxYearConfig struct {
	TaxYear                 int             `json:"taxYear"`
	Jurisdiction            string          `json:"jurisdiction"`
	CapitalLossDeductionCap Money           `json:"capitalLossDeductionCap"`
	LongTermRate            decimal.Decimal `json:"longTermRate"`
	ShortTermRate           decimal.Decimal `json:"shortTermRate"`
	QualifiedDividendRate   decimal.Decimal `json:"qualifiedDividendRate"`
	OrdinaryIncomeRate      decimal.Decimal `json:"ordinaryIncomeRate"`
	LongTermThresholdDays   int             `json:"longTermThresholdDays"`
	WashSaleWindowDays      int             `json:"washSaleWindowDays"`
}

// DefaultUSTaxYearConfig returns the simplified US federal approximation.
func DefaultUSTaxYearConfig(year int) TaxYearConfig {
	return TaxYearConfig{
		TaxYear:                 year,
		Jurisdiction:            "US",
		CapitalLossDeductionCap: MustParseMoney("3000"),
		LongTermRate:            decimal.RequireFromString("0.20"),
		ShortTermRate:           decimal.RequireFromString("0.37"),
		QualifiedDividendRate:   decimal.RequireFromString("0.20"),
		OrdinaryIncomeRate:      decimal.RequireFromString("0.37"),
		LongTermThresholdDays:   365,
		WashSaleWindowDays:      30,
	}
}

// YearBounds returns the first and last calendar day of the tax year.
func (c TaxYearConfig) YearBounds() (from, to time.Time) {
	from = time.Date(c.TaxYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(c.TaxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	return from, to
}

// DividendIncome splits dividends by tax treatment.
type DividendIncome struct {
	Qualified Money `json:"qualified"`
	Ordinary  Money `json:"ordinary"`
}

// Total returns qualified + ordinary dividends.
func (d DividendIncome) Total() Money { return d.Qualified + d.Ordinary }

// EstimatedTax is the per-category breakdown of the estimated liability.
type EstimatedTax struct {
	ShortTermGains     Money `json:"shortTermGains"`
	LongTermGains      Money `json:"longTermGains"`
	QualifiedDividends Money `json:"qualifiedDividends"`
	OrdinaryIncome     Money `json:"ordinaryIncome"`
	Total              Money `json:"total"`
}

// TaxReportSummary rolls up realized gains and investment income for a period.
type TaxReportSummary struct {
	TaxYear               int            `json:"taxYear"`
	Jurisdiction          string         `json:"jurisdiction"`
	NetRealizedGainLoss   Money          `json:"netRealizedGainLoss"`
	TotalRealizedGains    Money          `json:"totalRealizedGains"`
	TotalRealizedLosses   Money          `json:"totalRealizedLosses"` // positive magnitude
	ShortTermGainLoss     Money          `json:"shortTermGainLoss"`
	LongTermGainLoss      Money          `json:"longTermGainLoss"`
	WashSalesDisallowed   Money          `json:"washSalesDisallowed"` // positive magnitude
	DividendIncome        DividendIncome `json:"dividendIncome"`
	InterestIncome        Money          `json:"interestIncome"`
	CapitalLossDeduction  Money          `json:"capitalLossDeduction"`
	TaxLossCarryforward   Money          `json:"taxLossCarryforward"`
	EstimatedTax          EstimatedTax   `json:"estimatedTax"`
	EstimatedTaxLiability Money          `json:"estimatedTaxLiability"`
	IsEstimate            bool           `json:"isEstimate"`
	Disclaimer            string         `json:"disclaimer"`
}

// TaxReport is a generated, persisted tax summary for a portfolio.
type TaxReport struct {
	ReportID    string             `json:"reportID"`
	PortfolioID string             `json:"portfolioID"`
	TaxYear     int                `json:"taxYear"`
	Method      CostBasisMethod    `json:"method"`
	Summary     TaxReportSummary   `json:"summary"`
	Gains       CapitalGainsReport `json:"gains"`
	AuditFields
}
