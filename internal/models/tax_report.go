package models

// TaxReport is a row of tax_reports. Summary and Gains are JSONB documents.
type TaxReport struct {
	ReportID    string `db:"report_id"`
	PortfolioID string `db:"portfolio_id"`
	TaxYear     int    `db:"tax_year"`
	Method      string `db:"method"`
	Summary     []byte `db:"summary"`
	Gains       []byte `db:"gains"`
	AuditFields
}
