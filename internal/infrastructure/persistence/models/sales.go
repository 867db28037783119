package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// SellerModel is the persistence model for the Seller domain entity.
type SellerModel struct {
	BaseModel
	Name             string    `gorm:"type:varchar(200);not null"`
	ContactInfo      string    `gorm:"type:varchar(500);not null"`
	RegistrationDate time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SellerModel) TableName() string {
	return "sellers"
}

// ToDomain converts the persistence model to a domain Seller entity.
func (m *SellerModel) ToDomain() *sales.Seller {
	return &sales.Seller{
		BaseEntity:       m.BaseModel.ToDomain(),
		Name:             m.Name,
		ContactInfo:      m.ContactInfo,
		RegistrationDate: m.RegistrationDate,
	}
}

// FromDomain populates the persistence model from a domain Seller entity.
func (m *SellerModel) FromDomain(s *sales.Seller) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.ContactInfo = s.ContactInfo
	m.RegistrationDate = s.RegistrationDate
}

// SellerModelFromDomain creates a persistence model from a domain Seller.
func SellerModelFromDomain(s *sales.Seller) *SellerModel {
	m := &SellerModel{}
	m.FromDomain(s)
	return m
}

// TransactionModel is the persistence model for the Transaction domain entity.
type TransactionModel struct {
	BaseModel
	SellerID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentType     sales.PaymentType `gorm:"type:varchar(20);not null"`
	TransactionDate time.Time         `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *TransactionModel) ToDomain() *sales.Transaction {
	return &sales.Transaction{
		BaseEntity:      m.BaseModel.ToDomain(),
		SellerID:        m.SellerID,
		Amount:          m.Amount,
		PaymentType:     m.PaymentType,
		TransactionDate: m.TransactionDate,
	}
}

// FromDomain populates the persistence model from a domain Transaction entity.
func (m *TransactionModel) FromDomain(tx *sales.Transaction) {
	m.FromDomainBaseEntity(tx.BaseEntity)
	m.SellerID = tx.SellerID
	m.Amount = tx.Amount
	m.PaymentType = tx.PaymentType
	m.TransactionDate = tx.TransactionDate
}

// TransactionModelFromDomain creates a persistence model from a domain Transaction.
func TransactionModelFromDomain(tx *sales.Transaction) *TransactionModel {
	m := &TransactionModel{}
	m.FromDomain(tx)
	return m
}
