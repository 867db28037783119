package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	salesapp "github.com/salestrack/backend/internal/application/sales"
	"github.com/shopspring/decimal"
)

// AnalyticsHandler handles transaction analytics API endpoints
type AnalyticsHandler struct {
	BaseHandler
	analyticsService *salesapp.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *salesapp.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// MostProductiveSellerRequest represents the query window for the
// most productive seller report
// @Description Query parameters for the most productive seller report
type MostProductiveSellerRequest struct {
	Start string `form:"start" binding:"required" example:"2026-01-01T00:00:00Z"`
	End   string `form:"end" binding:"required" example:"2026-02-01T00:00:00Z"`
}

// MostProductiveSeller godoc
// @ID           getMostProductiveSeller
// @Summary      Most productive seller in a time window
// @Description  Returns the seller with the highest transaction total in [start, end); null when no transactions fall in the window
// @Tags         analytics
// @Produce      json
// @Param        start query string true "Window start (inclusive, RFC3339)"
// @Param        end query string true "Window end (exclusive, RFC3339)"
// @Success      200 {object} APIResponse[sales.SellerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/analytics/most-productive-seller [get]
func (h *AnalyticsHandler) MostProductiveSeller(c *gin.Context) {
	var req MostProductiveSellerRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		h.BadRequest(c, "Invalid start timestamp, expected RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		h.BadRequest(c, "Invalid end timestamp, expected RFC3339")
		return
	}

	seller, err := h.analyticsService.MostProductiveSeller(c.Request.Context(), start, end)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, seller)
}

// SellersUnderThreshold godoc
// @ID           getSellersUnderThreshold
// @Summary      Sellers with total sales under a threshold
// @Description  Returns all sellers whose lifetime transaction total is strictly below the threshold, including sellers with no transactions
// @Tags         analytics
// @Produce      json
// @Param        amount query string true "Amount threshold (decimal)" example(1000.00)
// @Success      200 {object} APIResponse[[]sales.SellerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/analytics/sellers-under-threshold [get]
func (h *AnalyticsHandler) SellersUnderThreshold(c *gin.Context) {
	raw := c.Query("amount")
	if raw == "" {
		h.BadRequest(c, "Amount is required")
		return
	}

	threshold, err := decimal.NewFromString(raw)
	if err != nil {
		h.BadRequest(c, "Invalid amount, expected a decimal number")
		return
	}

	sellers, err := h.analyticsService.SellersWithTotalLessThan(c.Request.Context(), threshold)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sellers)
}

// BusiestPeriod godoc
// @ID           getSellerBusiestPeriod
// @Summary      Busiest day for a seller
// @Description  Returns the 24-hour period with the most transactions for a seller; null when the seller has no transactions
// @Tags         analytics
// @Produce      json
// @Param        sellerId path string true "Seller ID" format(uuid)
// @Success      200 {object} APIResponse[sales.PeriodResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/analytics/busiest-period/{sellerId} [get]
func (h *AnalyticsHandler) BusiestPeriod(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("sellerId"))
	if err != nil {
		h.BadRequest(c, "Invalid seller ID format")
		return
	}

	period, err := h.analyticsService.BusiestPeriod(c.Request.Context(), sellerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, period)
}
