package dto

import (
	"time"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
)

// GenerateTaxReportRequest defines the data needed to generate a tax report.
type GenerateTaxReportRequest struct {
	TaxYear int    `json:"taxYear" binding:"required,gte=1900,lte=2200"`
	Method  string `json:"method" binding:"omitempty,cost_basis_method"`
}

// ListTaxReportsParams holds parameters for listing tax reports.
type ListTaxReportsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// TaxReportResponse defines the data returned for a tax report.
type TaxReportResponse struct {
	ReportID    string                     `json:"reportID"`
	PortfolioID string                     `json:"portfolioID"`
	TaxYear     int                        `json:"taxYear"`
	Method      string                     `json:"method"`
	Summary     domain.TaxReportSummary    `json:"summary"`
	Gains       *domain.CapitalGainsReport `json:"gains,omitempty"`
	CreatedAt   time.Time                  `json:"createdAt"`
	CreatedBy   string                     `json:"createdBy"`
}

// ListTaxReportsResponse is a page of tax reports.
type ListTaxReportsResponse struct {
	Reports   []TaxReportResponse `json:"reports"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ToTaxReportResponse converts a domain report to its response DTO.
// Listings leave out the per-lot detail.
func ToTaxReportResponse(r *domain.TaxReport, withGains bool) TaxReportResponse {
	resp := TaxReportResponse{
		ReportID:    r.ReportID,
		PortfolioID: r.PortfolioID,
		TaxYear:     r.TaxYear,
		Method:      string(r.Method),
		Summary:     r.Summary,
		CreatedAt:   r.CreatedAt,
		CreatedBy:   r.CreatedBy,
	}
	if withGains {
		gains := r.Gains
		resp.Gains = &gains
	}
	return resp
}

// ToTaxReportResponses converts a page of reports for listing.
func ToTaxReportResponses(reports []domain.TaxReport) []TaxReportResponse {
	out := make([]TaxReportResponse, len(reports))
	for i := range reports {
		out[i] = ToTaxReportResponse(&reports[i], false)
	}
	return out
}
