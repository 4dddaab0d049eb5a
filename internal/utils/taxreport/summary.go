// Package taxreport rolls realized gains and investment income into an estimated tax summary.
package taxreport

import (
	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildTaxSummary aggregates a capital-gains report with dividend and interest income.
//
// The liability is a flat per-category approximation driven entirely by cfg. It is always
// labelled as an estimate.
func BuildTaxSummary(gains *domain.CapitalGainsReport, dividends domain.DividendIncome, interest domain.Money, cfg domain.TaxYearConfig) domain.TaxReportSummary {
	if gains == nil {
		gains = &domain.CapitalGainsReport{}
	}

	net := gains.NetCapitalGain
	shortTerm, longTerm := gains.AllowedTermTotals()
	lossCap := domain.MaxMoney(cfg.CapitalLossDeductionCap, 0)

	summary := domain.TaxReportSummary{
		TaxYear:             cfg.TaxYear,
		Jurisdiction:        cfg.Jurisdiction,
		NetRealizedGainLoss: net,
		TotalRealizedGains:  domain.MaxMoney(net, 0),
		TotalRealizedLosses: domain.MaxMoney(net.Neg(), 0),
		ShortTermGainLoss:   shortTerm,
		LongTermGainLoss:    longTerm,
		WashSalesDisallowed: gains.WashSalesAdjustment.Neg(),
		DividendIncome:      dividends,
		InterestIncome:      interest,
		TaxLossCarryforward: domain.MaxMoney(net.Neg()-lossCap, 0),
		IsEstimate:          true,
		Disclaimer:          domain.EstimateDisclaimer,
	}
	summary.CapitalLossDeduction = summary.TotalRealizedLosses - summary.TaxLossCarryforward

	summary.EstimatedTax = estimateTax(shortTerm, longTerm, dividends, interest, summary.CapitalLossDeduction, cfg)
	summary.EstimatedTaxLiability = summary.EstimatedTax.Total
	return summary
}

func estimateTax(shortTerm, longTerm domain.Money, dividends domain.DividendIncome, interest, deduction domain.Money, cfg domain.TaxYearConfig) domain.EstimatedTax {
	shortTerm, longTerm = netTerms(shortTerm, longTerm)
	ordinaryBase := domain.MaxMoney(dividends.Ordinary+interest-deduction, 0)

	est := domain.EstimatedTax{
		ShortTermGains:     applyRate(domain.MaxMoney(shortTerm, 0), cfg.ShortTermRate),
		LongTermGains:      applyRate(domain.MaxMoney(longTerm, 0), cfg.LongTermRate),
		QualifiedDividends: applyRate(dividends.Qualified, cfg.QualifiedDividendRate),
		OrdinaryIncome:     applyRate(ordinaryBase, cfg.OrdinaryIncomeRate),
	}
	est.Total = domain.SumMoney(est.ShortTermGains, est.LongTermGains, est.QualifiedDividends, est.OrdinaryIncome)
	return est
}

// netTerms offsets a loss in one holding term against a gain in the other.
func netTerms(shortTerm, longTerm domain.Money) (domain.Money, domain.Money) {
	if (shortTerm < 0) == (longTerm < 0) {
		return shortTerm, longTerm
	}
	total := shortTerm + longTerm
	if shortTerm < 0 {
		if total >= 0 {
			return 0, total
		}
		return total, 0
	}
	if total >= 0 {
		return total, 0
	}
	return 0, total
}

func applyRate(amount domain.Money, rate decimal.Decimal) domain.Money {
	return domain.NewMoneyFromCents(amount.MulDecimal(rate))
}
