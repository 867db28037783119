package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	salesapp "github.com/salestrack/backend/internal/application/sales"
	"github.com/salestrack/backend/internal/interfaces/http/dto"
)

// SellerHandler handles seller-related API endpoints
type SellerHandler struct {
	BaseHandler
	sellerService *salesapp.SellerService
}

// NewSellerHandler creates a new SellerHandler
func NewSellerHandler(sellerService *salesapp.SellerService) *SellerHandler {
	return &SellerHandler{
		sellerService: sellerService,
	}
}

// CreateSellerRequest represents a request to register a new seller
// @Description Request body for registering a new seller
type CreateSellerRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200" example:"Acme Retail"`
	ContactInfo string `json:"contact_info" binding:"max=500" example:"acme@example.com"`
}

// UpdateSellerRequest represents a request to update a seller
// @Description Request body for updating a seller
type UpdateSellerRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200" example:"Acme Retail Ltd"`
	ContactInfo *string `json:"contact_info" binding:"omitempty,max=500" example:"sales@acme.example.com"`
}

// Create godoc
// @ID           createSeller
// @Summary      Register a new seller
// @Description  Register a new seller; the registration date is assigned by the server
// @Tags         sellers
// @Accept       json
// @Produce      json
// @Param        request body CreateSellerRequest true "Seller creation request"
// @Success      201 {object} APIResponse[sales.SellerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/sellers [post]
func (h *SellerHandler) Create(c *gin.Context) {
	var req CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	seller, err := h.sellerService.Create(c.Request.Context(), salesapp.CreateSellerRequest{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, seller)
}

// GetByID godoc
// @ID           getSellerById
// @Summary      Get seller by ID
// @Description  Retrieve a seller by its ID
// @Tags         sellers
// @Produce      json
// @Param        id path string true "Seller ID" format(uuid)
// @Success      200 {object} APIResponse[sales.SellerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/sellers/{id} [get]
func (h *SellerHandler) GetByID(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid seller ID format")
		return
	}

	seller, err := h.sellerService.GetByID(c.Request.Context(), sellerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, seller)
}

// List godoc
// @ID           listSellers
// @Summary      List sellers
// @Description  List all registered sellers with pagination
// @Tags         sellers
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]sales.SellerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/sellers [get]
func (h *SellerHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sellers, total, err := h.sellerService.List(c.Request.Context(), salesapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, sellers, total, req.Page, req.PageSize)
}

// Update godoc
// @ID           updateSeller
// @Summary      Update a seller
// @Description  Partially update a seller; omitted or blank fields keep their current values
// @Tags         sellers
// @Accept       json
// @Produce      json
// @Param        id path string true "Seller ID" format(uuid)
// @Param        request body UpdateSellerRequest true "Seller update request"
// @Success      200 {object} APIResponse[sales.SellerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/sellers/{id} [put]
func (h *SellerHandler) Update(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid seller ID format")
		return
	}

	var req UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	seller, err := h.sellerService.Update(c.Request.Context(), sellerID, salesapp.UpdateSellerRequest{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, seller)
}

// Delete godoc
// @ID           deleteSeller
// @Summary      Delete a seller
// @Description  Delete a seller by its ID
// @Tags         sellers
// @Produce      json
// @Param        id path string true "Seller ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/sellers/{id} [delete]
func (h *SellerHandler) Delete(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid seller ID format")
		return
	}

	if err := h.sellerService.Delete(c.Request.Context(), sellerID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
