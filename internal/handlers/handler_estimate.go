package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bizos_calc/internal/core/ports/services"
	"github.com/SscSPs/bizos_calc/internal/dto"
	"github.com/SscSPs/bizos_calc/internal/middleware"
	"github.com/gin-gonic/gin"
)

type estimateHandler struct {
	estimateService portssvc.EstimateSvcFacade
}

func newEstimateHandler(es portssvc.EstimateSvcFacade) *estimateHandler {
	return &estimateHandler{
		estimateService: es,
	}
}

func registerEstimateRoutes(rg *gin.RouterGroup, estimateService portssvc.EstimateSvcFacade) {
	h := newEstimateHandler(estimateService)

	estimates := rg.Group("/estimates")
	estimates.POST("/markup", h.priceEstimate)
}

// priceEstimate godoc
// @Summary Price an estimate by markup
// @Description Adds labor and materials to the base price, applies the markup and reports profit and margin.
// @Tags estimates
// @Accept json
// @Produce json
// @Param estimate body dto.MarkupEstimateRequest true "Estimate cost components"
// @Success 200 {object} domain.MarkupPricingResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to price estimate"
// @Security BearerAuth
// @Router /estimates/markup [post]
func (h *estimateHandler) priceEstimate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MarkupEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	result, err := h.estimateService.PriceEstimate(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to price estimate")
		return
	}
	c.JSON(http.StatusOK, result)
}
