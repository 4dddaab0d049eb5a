package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/dto"
	"github.com/SscSPs/bizos_calc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoice pricing
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers routes related to invoices
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("/quote", h.quoteInvoice)
		invoices.POST("/due-date", h.resolveDueDate)
	}
}

// quoteInvoice godoc
// @Summary Price an invoice draft
// @Description Computes line totals, discounts, tax and the due date for a draft invoice. Nothing is stored.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.QuoteInvoiceRequest true "Invoice draft"
// @Success 200 {object} dto.InvoiceQuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to price invoice"
// @Security BearerAuth
// @Router /invoices/quote [post]
func (h *invoiceHandler) quoteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	quote, err := h.invoiceService.QuoteInvoice(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to price invoice")
		return
	}

	logger.Info("Invoice quoted",
		slog.Int("line_items", len(req.LineItems)),
		slog.String("total", quote.Pricing.TotalAmount.String()))
	c.JSON(http.StatusOK, dto.ToInvoiceQuoteResponse(quote))
}

// resolveDueDate godoc
// @Summary Resolve an invoice due date
// @Description Applies a payment term to an issue date. Unknown terms fall back to net_30.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body dto.DueDateRequest true "Payment term and dates"
// @Success 200 {object} dto.DueDateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /invoices/due-date [post]
func (h *invoiceHandler) resolveDueDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	issueDate, err := dto.ParseDate("issueDate", req.IssueDate)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve due date")
		return
	}
	customDueDate, err := dto.ParseOptionalDate("customDueDate", req.CustomDueDate)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve due date")
		return
	}

	dueDate, term, fellBack, err := h.invoiceService.ResolveDueDate(c.Request.Context(), req.PaymentTerm, issueDate, customDueDate)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve due date")
		return
	}

	c.JSON(http.StatusOK, dto.DueDateResponse{
		IssueDate:    issueDate.Format(dto.DateLayout),
		DueDate:      dueDate.Format(dto.DateLayout),
		PaymentTerm:  string(term),
		TermFellBack: fellBack,
	})
}
