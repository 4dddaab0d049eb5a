package taxreport_test

import (
	"testing"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/SscSPs/bizos_calc/internal/utils/taxreport"
	"github.com/stretchr/testify/assert"
)

func gainsOf(pairs ...domain.CapitalGainTransaction) *domain.CapitalGainsReport {
	r := &domain.CapitalGainsReport{Transactions: pairs}
	r.Recalculate()
	return r
}

func pair(term domain.HoldingTerm, gain string, wash bool) domain.CapitalGainTransaction {
	g := domain.MustParseMoney(gain)
	p := domain.CapitalGainTransaction{Term: term, GainLoss: g, IsWashSale: wash}
	if wash {
		p.DisallowedLoss = g.Neg()
	}
	return p
}

func TestBuildTaxSummary_Gains(t *testing.T) {
	cfg := domain.DefaultUSTaxYearConfig(2024)
	gains := gainsOf(pair(domain.ShortTerm, "1000", false), pair(domain.LongTerm, "2000", false))
	dividends := domain.DividendIncome{Qualified: domain.MustParseMoney("500"), Ordinary: domain.MustParseMoney("300")}

	s := taxreport.BuildTaxSummary(gains, dividends, domain.MustParseMoney("200"), cfg)

	assert.Equal(t, 2024, s.TaxYear)
	assert.Equal(t, "US", s.Jurisdiction)
	assert.Equal(t, "3000.00", s.NetRealizedGainLoss.String())
	assert.Equal(t, "3000.00", s.TotalRealizedGains.String())
	assert.True(t, s.TotalRealizedLosses.IsZero())
	assert.True(t, s.TaxLossCarryforward.IsZero())
	assert.Equal(t, "370.00", s.EstimatedTax.ShortTermGains.String())
	assert.Equal(t, "400.00", s.EstimatedTax.LongTermGains.String())
	assert.Equal(t, "100.00", s.EstimatedTax.QualifiedDividends.String())
	assert.Equal(t, "185.00", s.EstimatedTax.OrdinaryIncome.String())
	assert.Equal(t, "1055.00", s.EstimatedTaxLiability.String())
	assert.True(t, s.IsEstimate)
	assert.NotEmpty(t, s.Disclaimer)
}

func TestBuildTaxSummary_LossBeyondCap(t *testing.T) {
	cfg := domain.DefaultUSTaxYearConfig(2024)
	gains := gainsOf(pair(domain.ShortTerm, "-5000", false))
	dividends := domain.DividendIncome{Qualified: domain.MustParseMoney("1000"), Ordinary: domain.MustParseMoney("500")}

	s := taxreport.BuildTaxSummary(gains, dividends, domain.MustParseMoney("1000"), cfg)

	assert.Equal(t, "-5000.00", s.NetRealizedGainLoss.String())
	assert.True(t, s.TotalRealizedGains.IsZero())
	assert.Equal(t, "5000.00", s.TotalRealizedLosses.String())
	assert.Equal(t, "3000.00", s.CapitalLossDeduction.String())
	assert.Equal(t, "2000.00", s.TaxLossCarryforward.String())
	assert.True(t, s.EstimatedTax.ShortTermGains.IsZero())
	assert.True(t, s.EstimatedTax.OrdinaryIncome.IsZero())
	assert.Equal(t, "200.00", s.EstimatedTaxLiability.String())
}

func TestBuildTaxSummary_CarryforwardUsesConfiguredCap(t *testing.T) {
	cfg := domain.DefaultUSTaxYearConfig(2025)
	cfg.Jurisdiction = "XX"
	cfg.CapitalLossDeductionCap = domain.MustParseMoney("1500")

	tests := []struct {
		name         string
		net          string
		carryforward string
		deduction    string
	}{
		{"below cap", "-1000", "0.00", "1000.00"},
		{"at cap", "-1500", "0.00", "1500.00"},
		{"above cap", "-4000.50", "2500.50", "1500.00"},
		{"gain", "250", "0.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := taxreport.BuildTaxSummary(gainsOf(pair(domain.LongTerm, tt.net, false)), domain.DividendIncome{}, 0, cfg)

			assert.Equal(t, "XX", s.Jurisdiction)
			assert.Equal(t, tt.carryforward, s.TaxLossCarryforward.String())
			assert.Equal(t, tt.deduction, s.CapitalLossDeduction.String())
		})
	}
}

func TestBuildTaxSummary_NetsTermsAgainstEachOther(t *testing.T) {
	cfg := domain.DefaultUSTaxYearConfig(2024)
	gains := gainsOf(pair(domain.ShortTerm, "-500", false), pair(domain.LongTerm, "2000", false))

	s := taxreport.BuildTaxSummary(gains, domain.DividendIncome{}, 0, cfg)

	assert.Equal(t, "-500.00", s.ShortTermGainLoss.String())
	assert.Equal(t, "2000.00", s.LongTermGainLoss.String())
	assert.True(t, s.EstimatedTax.ShortTermGains.IsZero())
	assert.Equal(t, "300.00", s.EstimatedTax.LongTermGains.String())
}

func TestBuildTaxSummary_WashedLossesExcluded(t *testing.T) {
	cfg := domain.DefaultUSTaxYearConfig(2024)
	gains := gainsOf(pair(domain.ShortTerm, "1000", false), pair(domain.ShortTerm, "-400", true))

	s := taxreport.BuildTaxSummary(gains, domain.DividendIncome{}, 0, cfg)

	assert.Equal(t, "1000.00", s.NetRealizedGainLoss.String())
	assert.Equal(t, "1000.00", s.ShortTermGainLoss.String())
	assert.Equal(t, "400.00", s.WashSalesDisallowed.String())
	assert.Equal(t, "370.00", s.EstimatedTaxLiability.String())
}

func TestBuildTaxSummary_NilGains(t *testing.T) {
	s := taxreport.BuildTaxSummary(nil, domain.DividendIncome{Ordinary: domain.MustParseMoney("100")}, domain.MustParseMoney("100"), domain.DefaultUSTaxYearConfig(2024))

	assert.True(t, s.NetRealizedGainLoss.IsZero())
	assert.Equal(t, "74.00", s.EstimatedTaxLiability.String())
	assert.Equal(t, "100.00", s.InterestIncome.String())
}
