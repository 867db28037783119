package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	salesapp "github.com/salestrack/backend/internal/application/sales"
	"github.com/salestrack/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related API endpoints
type TransactionHandler struct {
	BaseHandler
	transactionService *salesapp.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *salesapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransactionRequest represents a request to record a new transaction
// @Description Request body for recording a new transaction
type CreateTransactionRequest struct {
	SellerID    string  `json:"seller_id" binding:"required,uuid" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Amount      float64 `json:"amount" binding:"gte=0" example:"149.90"`
	PaymentType string  `json:"payment_type" binding:"required,paymenttype" example:"CARD"`
}

// UpdateTransactionRequest represents a request to update a transaction
// @Description Request body for updating a transaction
type UpdateTransactionRequest struct {
	SellerID    *string  `json:"seller_id" binding:"omitempty,uuid" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Amount      *float64 `json:"amount" example:"99.50"`
	PaymentType *string  `json:"payment_type" example:"TRANSFER"`
}

// Create godoc
// @ID           createTransaction
// @Summary      Record a new transaction
// @Description  Record a transaction for an existing seller; the transaction date is assigned by the server
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request body CreateTransactionRequest true "Transaction creation request"
// @Success      201 {object} APIResponse[sales.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		h.BadRequest(c, "Invalid seller ID format")
		return
	}

	tx, err := h.transactionService.Create(c.Request.Context(), salesapp.CreateTransactionRequest{
		SellerID:    sellerID,
		Amount:      decimal.NewFromFloat(req.Amount),
		PaymentType: req.PaymentType,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, tx)
}

// GetByID godoc
// @ID           getTransactionById
// @Summary      Get transaction by ID
// @Description  Retrieve a transaction with its seller embedded
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      200 {object} APIResponse[sales.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *gin.Context) {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	tx, err := h.transactionService.GetByID(c.Request.Context(), transactionID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tx)
}

// List godoc
// @ID           listTransactions
// @Summary      List transactions
// @Description  List all recorded transactions with pagination, newest first
// @Tags         transactions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]sales.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transactions, total, err := h.transactionService.List(c.Request.Context(), salesapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, transactions, total, req.Page, req.PageSize)
}

// Update godoc
// @ID           updateTransaction
// @Summary      Update a transaction
// @Description  Partially update a transaction; omitted or invalid fields keep their current values
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Param        request body UpdateTransactionRequest true "Transaction update request"
// @Success      200 {object} APIResponse[sales.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := salesapp.UpdateTransactionRequest{
		PaymentType: req.PaymentType,
	}
	if req.SellerID != nil {
		sellerID, err := uuid.Parse(*req.SellerID)
		if err != nil {
			h.BadRequest(c, "Invalid seller ID format")
			return
		}
		appReq.SellerID = &sellerID
	}
	if req.Amount != nil {
		d := decimal.NewFromFloat(*req.Amount)
		appReq.Amount = &d
	}

	tx, err := h.transactionService.Update(c.Request.Context(), transactionID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tx)
}

// Delete godoc
// @ID           deleteTransaction
// @Summary      Delete a transaction
// @Description  Delete a transaction by its ID
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /sales/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), transactionID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
