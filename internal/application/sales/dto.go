package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// CreateSellerRequest carries the data needed to register a seller
type CreateSellerRequest struct {
	Name        string
	ContactInfo string
}

// UpdateSellerRequest carries a partial seller update.
// Nil fields are left untouched; blank values are dropped silently
// (best-effort partial update).
type UpdateSellerRequest struct {
	Name        *string
	ContactInfo *string
}

// CreateTransactionRequest carries the data needed to record a transaction
type CreateTransactionRequest struct {
	SellerID    uuid.UUID
	Amount      decimal.Decimal
	PaymentType string
}

// UpdateTransactionRequest carries a partial transaction update.
// Nil fields are left untouched; invalid values (unknown seller, negative
// amount, unknown payment type) are dropped silently.
type UpdateTransactionRequest struct {
	SellerID    *uuid.UUID
	Amount      *decimal.Decimal
	PaymentType *string
}

// ListFilter carries pagination options for list queries
type ListFilter struct {
	Page     int
	PageSize int
}

// SellerResponse is the external representation of a seller
type SellerResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	ContactInfo      string    `json:"contact_info"`
	RegistrationDate time.Time `json:"registration_date"`
}

// TransactionResponse is the external representation of a transaction.
// The seller is embedded, matching the public API contract.
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	Seller          SellerResponse  `json:"seller"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentType     string          `json:"payment_type"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// PeriodResponse is a half-open 24-hour interval: start inclusive,
// end exclusive.
type PeriodResponse struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// ToSellerResponse converts a domain seller to its response DTO
func ToSellerResponse(seller *sales.Seller) SellerResponse {
	return SellerResponse{
		ID:               seller.ID,
		Name:             seller.Name,
		ContactInfo:      seller.ContactInfo,
		RegistrationDate: seller.RegistrationDate,
	}
}

// ToSellerResponses converts a slice of domain sellers to response DTOs
func ToSellerResponses(sellers []sales.Seller) []SellerResponse {
	responses := make([]SellerResponse, len(sellers))
	for i := range sellers {
		responses[i] = ToSellerResponse(&sellers[i])
	}
	return responses
}

// ToTransactionResponse converts a domain transaction and its seller to a
// response DTO
func ToTransactionResponse(tx *sales.Transaction, seller *sales.Seller) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		Seller:          ToSellerResponse(seller),
		Amount:          tx.Amount,
		PaymentType:     tx.PaymentType.String(),
		TransactionDate: tx.TransactionDate,
	}
}
