package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/dto"
	"github.com/SscSPs/bizos_calc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxReportHandler handles HTTP requests related to tax reports
type taxReportHandler struct {
	reportingService portssvc.TaxReportSvc
}

// newTaxReportHandler creates a new taxReportHandler
func newTaxReportHandler(rs portssvc.TaxReportSvc) *taxReportHandler {
	return &taxReportHandler{
		reportingService: rs,
	}
}

// registerTaxReportRoutes registers routes addressing a report directly
func registerTaxReportRoutes(rg *gin.RouterGroup, reportingService portssvc.TaxReportSvc) {
	h := newTaxReportHandler(reportingService)

	rg.GET("/tax-reports/:report_id", h.getTaxReport)
}

// generateTaxReport godoc
// @Summary Generate a tax report
// @Description Computes the capital gains, income and estimated liability of a portfolio for a tax year and stores the result.
// @Tags tax-reports
// @Accept json
// @Produce json
// @Param portfolio_id path string true "Portfolio ID"
// @Param report body dto.GenerateTaxReportRequest true "Tax year and cost-basis method"
// @Success 201 {object} dto.TaxReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "A sale exceeds the open lots"
// @Failure 500 {object} map[string]string "Failed to generate tax report"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/tax-reports [post]
func (h *taxReportHandler) generateTaxReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	portfolioID := c.Param("portfolio_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.GenerateTaxReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	var method domain.CostBasisMethod
	if req.Method != "" {
		m, err := domain.ParseCostBasisMethod(req.Method)
		if err != nil {
			respondWithError(c, logger, err, "Failed to generate tax report")
			return
		}
		method = m
	}

	logger = logger.With(
		slog.String("user_id", userID),
		slog.String("portfolio_id", portfolioID),
		slog.Int("tax_year", req.TaxYear),
	)
	logger.Info("Received request to generate tax report")

	report, err := h.reportingService.GenerateTaxReport(c.Request.Context(), portfolioID, req.TaxYear, method, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate tax report")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaxReportResponse(report, true))
}

// listTaxReports godoc
// @Summary List tax reports
// @Description Lists a portfolio's stored tax reports, newest first, without per-lot detail.
// @Tags tax-reports
// @Produce json
// @Param portfolio_id path string true "Portfolio ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTaxReportsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list tax reports"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/tax-reports [get]
func (h *taxReportHandler) listTaxReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	portfolioID := c.Param("portfolio_id")

	var params dto.ListTaxReportsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.reportingService.ListTaxReports(c.Request.Context(), portfolioID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list tax reports")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTaxReport godoc
// @Summary Get a tax report
// @Description Returns a stored tax report including its capital-gains detail.
// @Tags tax-reports
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} dto.TaxReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Failed to get tax report"
// @Security BearerAuth
// @Router /tax-reports/{report_id} [get]
func (h *taxReportHandler) getTaxReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("report_id")

	report, err := h.reportingService.GetTaxReport(c.Request.Context(), reportID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("report_id", reportID)), err, "Failed to get tax report")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxReportResponse(report, true))
}
