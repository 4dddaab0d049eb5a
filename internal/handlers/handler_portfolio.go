package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/dto"
	"github.com/SscSPs/bizos_calc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// portfolioHandler handles HTTP requests related to portfolio history and capital gains
type portfolioHandler struct {
	reportingService portssvc.InvestmentReportingSvcFacade
}

// newPortfolioHandler creates a new portfolioHandler
func newPortfolioHandler(rs portssvc.InvestmentReportingSvcFacade) *portfolioHandler {
	return &portfolioHandler{
		reportingService: rs,
	}
}

// registerPortfolioRoutes registers routes nested under a portfolio, including its tax reports
func registerPortfolioRoutes(rg *gin.RouterGroup, reportingService portssvc.InvestmentReportingSvcFacade) {
	h := newPortfolioHandler(reportingService)
	th := newTaxReportHandler(reportingService)

	portfolio := rg.Group("/portfolios/:portfolio_id")
	{
		portfolio.POST("/transactions", h.recordTransactions)
		portfolio.GET("/capital-gains", h.getCapitalGains)
		portfolio.POST("/tax-reports", th.generateTaxReport)
		portfolio.GET("/tax-reports", th.listTaxReports)
	}
}

// recordTransactions godoc
// @Summary Record portfolio transactions
// @Description Appends a batch of buys, sells, dividends and interest to a portfolio. The batch is stored atomically.
// @Tags portfolios
// @Accept json
// @Produce json
// @Param portfolio_id path string true "Portfolio ID"
// @Param transactions body dto.RecordTransactionsRequest true "Transactions to record"
// @Success 201 {object} dto.RecordTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Transaction ID already recorded"
// @Failure 500 {object} map[string]string "Failed to record transactions"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/transactions [post]
func (h *portfolioHandler) recordTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	portfolioID := c.Param("portfolio_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RecordTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("portfolio_id", portfolioID))
	txns, err := dto.ToDomainTransactions(portfolioID, req.Transactions)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record transactions")
		return
	}

	stored, err := h.reportingService.RecordTransactions(c.Request.Context(), portfolioID, txns, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record transactions")
		return
	}

	c.JSON(http.StatusCreated, dto.RecordTransactionsResponse{
		PortfolioID:  portfolioID,
		Transactions: stored,
	})
}

// getCapitalGains godoc
// @Summary Compute realized capital gains
// @Description Matches sales to purchase lots and classifies each as short or long term, applying wash-sale rules.
// @Tags portfolios
// @Produce json
// @Param portfolio_id path string true "Portfolio ID"
// @Param method query string false "Cost-basis method (fifo, lifo, average, specific_id)" default(fifo)
// @Param from query string false "First sale date (YYYY-MM-DD)"
// @Param to query string false "Last sale date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.CapitalGainsReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "A sale exceeds the open lots"
// @Failure 500 {object} map[string]string "Failed to compute capital gains"
// @Security BearerAuth
// @Router /portfolios/{portfolio_id}/capital-gains [get]
func (h *portfolioHandler) getCapitalGains(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	portfolioID := c.Param("portfolio_id")

	var query dto.CapitalGainsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, logger, err)
		return
	}

	var method domain.CostBasisMethod
	if query.Method != "" {
		m, err := domain.ParseCostBasisMethod(query.Method)
		if err != nil {
			respondWithError(c, logger, err, "Failed to compute capital gains")
			return
		}
		method = m
	}

	var from, to time.Time
	var err error
	if query.From != "" {
		if from, err = dto.ParseDate("from", query.From); err != nil {
			respondWithError(c, logger, err, "Failed to compute capital gains")
			return
		}
	}
	if query.To != "" {
		if to, err = dto.ParseDate("to", query.To); err != nil {
			respondWithError(c, logger, err, "Failed to compute capital gains")
			return
		}
	}

	logger = logger.With(slog.String("portfolio_id", portfolioID))
	report, err := h.reportingService.CapitalGains(c.Request.Context(), portfolioID, method, from, to)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute capital gains")
		return
	}
	c.JSON(http.StatusOK, report)
}
