package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentType represents the payment method of a transaction
type PaymentType string

const (
	PaymentTypeCash     PaymentType = "CASH"
	PaymentTypeCard     PaymentType = "CARD"
	PaymentTypeTransfer PaymentType = "TRANSFER"
)

// String returns the string representation of PaymentType
func (p PaymentType) String() string {
	return string(p)
}

// IsValid returns true if the payment type is a member of the closed set
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypeCash, PaymentTypeCard, PaymentTypeTransfer:
		return true
	}
	return false
}

// PaymentTypes returns all valid payment types
func PaymentTypes() []PaymentType {
	return []PaymentType{PaymentTypeCash, PaymentTypeCard, PaymentTypeTransfer}
}

// Transaction represents a single payment event referencing one seller.
// Amounts use exact decimal arithmetic; they are never negative.
type Transaction struct {
	shared.BaseEntity
	SellerID        uuid.UUID
	Amount          decimal.Decimal
	PaymentType     PaymentType
	TransactionDate time.Time
}

// NewTransaction creates a new transaction for the given seller
func NewTransaction(sellerID uuid.UUID, amount decimal.Decimal, paymentType PaymentType) (*Transaction, error) {
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Payment type must be one of CASH, CARD, TRANSFER")
	}

	return &Transaction{
		BaseEntity:      shared.NewBaseEntity(),
		SellerID:        sellerID,
		Amount:          amount,
		PaymentType:     paymentType,
		TransactionDate: time.Now(),
	}, nil
}

// ReassignSeller moves the transaction to a different seller
func (t *Transaction) ReassignSeller(sellerID uuid.UUID) error {
	if sellerID == uuid.Nil {
		return shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}

	t.SellerID = sellerID
	t.Touch()

	return nil
}

// UpdateAmount changes the transaction amount
func (t *Transaction) UpdateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}

	t.Amount = amount
	t.Touch()

	return nil
}

// UpdatePaymentType changes the payment method
func (t *Transaction) UpdatePaymentType(paymentType PaymentType) error {
	if !paymentType.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_TYPE", "Payment type must be one of CASH, CARD, TRANSFER")
	}

	t.PaymentType = paymentType
	t.Touch()

	return nil
}

// UpdateTransactionDate changes the transaction timestamp
func (t *Transaction) UpdateTransactionDate(date time.Time) error {
	if date.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Transaction date cannot be zero")
	}

	t.TransactionDate = date
	t.Touch()

	return nil
}
