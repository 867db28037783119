package sales

import (
	"strings"
	"time"

	"github.com/salestrack/backend/internal/domain/shared"
)

// Seller represents a party that receives payments via transactions.
// It is the aggregate root for seller-related operations.
type Seller struct {
	shared.BaseEntity
	Name             string
	ContactInfo      string
	RegistrationDate time.Time // Set at creation, immutable afterwards
}

// NewSeller creates a new seller with required fields.
// Name and contact info are trimmed and must be non-empty.
func NewSeller(name, contactInfo string) (*Seller, error) {
	name = strings.TrimSpace(name)
	contactInfo = strings.TrimSpace(contactInfo)

	if err := validateSellerName(name); err != nil {
		return nil, err
	}
	if err := validateContactInfo(contactInfo); err != nil {
		return nil, err
	}

	return &Seller{
		BaseEntity:       shared.NewBaseEntity(),
		Name:             name,
		ContactInfo:      contactInfo,
		RegistrationDate: time.Now(),
	}, nil
}

// Rename changes the seller's name
func (s *Seller) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateSellerName(name); err != nil {
		return err
	}

	s.Name = name
	s.Touch()

	return nil
}

// UpdateContactInfo changes the seller's contact information
func (s *Seller) UpdateContactInfo(contactInfo string) error {
	contactInfo = strings.TrimSpace(contactInfo)
	if err := validateContactInfo(contactInfo); err != nil {
		return err
	}

	s.ContactInfo = contactInfo
	s.Touch()

	return nil
}

func validateSellerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Seller name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Seller name cannot exceed 200 characters")
	}
	return nil
}

func validateContactInfo(contactInfo string) error {
	if contactInfo == "" {
		return shared.NewDomainError("INVALID_CONTACT_INFO", "Contact info cannot be empty")
	}
	if len(contactInfo) > 500 {
		return shared.NewDomainError("INVALID_CONTACT_INFO", "Contact info cannot exceed 500 characters")
	}
	return nil
}
