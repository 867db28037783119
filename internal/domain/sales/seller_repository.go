package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/shared"
)

// SellerRepository defines the interface for seller persistence
type SellerRepository interface {
	// FindByID finds a seller by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Seller, error)

	// FindAll finds all sellers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Seller, error)

	// Save creates or updates a seller
	Save(ctx context.Context, seller *Seller) error

	// Delete deletes a seller
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts sellers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Exists reports whether a seller with the given ID exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
