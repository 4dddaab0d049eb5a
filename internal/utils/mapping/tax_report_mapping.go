package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/SscSPs/bizos_calc/internal/models"
)

// ToModelTaxReport converts a domain TaxReport to a model row, encoding the documents as JSON
func ToModelTaxReport(d domain.TaxReport) (models.TaxReport, error) {
	summary, err := json.Marshal(d.Summary)
	if err != nil {
		return models.TaxReport{}, fmt.Errorf("failed to encode tax report summary: %w", err)
	}
	gains, err := json.Marshal(d.Gains)
	if err != nil {
		return models.TaxReport{}, fmt.Errorf("failed to encode tax report gains: %w", err)
	}
	return models.TaxReport{
		ReportID:    d.ReportID,
		PortfolioID: d.PortfolioID,
		TaxYear:     d.TaxYear,
		Method:      string(d.Method),
		Summary:     summary,
		Gains:       gains,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainTaxReport converts a model row to a domain TaxReport
func ToDomainTaxReport(m models.TaxReport) (domain.TaxReport, error) {
	d := domain.TaxReport{
		ReportID:    m.ReportID,
		PortfolioID: m.PortfolioID,
		TaxYear:     m.TaxYear,
		Method:      domain.CostBasisMethod(m.Method),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if err := json.Unmarshal(m.Summary, &d.Summary); err != nil {
		return domain.TaxReport{}, fmt.Errorf("failed to decode tax report summary: %w", err)
	}
	if len(m.Gains) > 0 {
		if err := json.Unmarshal(m.Gains, &d.Gains); err != nil {
			return domain.TaxReport{}, fmt.Errorf("failed to decode tax report gains: %w", err)
		}
	}
	return d, nil
}
