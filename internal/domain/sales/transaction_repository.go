package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/shared"
)

// TransactionRepository defines the interface for transaction persistence
type TransactionRepository interface {
	// FindByID finds a transaction by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)

	// FindAll finds all transactions matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Transaction, error)

	// FindBySeller finds all transactions referencing the given seller
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]Transaction, error)

	// FindByDateRange finds all transactions with a transaction date
	// in [start, end). The range is half-open: start inclusive, end exclusive.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]Transaction, error)

	// Save creates or updates a transaction
	Save(ctx context.Context, transaction *Transaction) error

	// Delete deletes a transaction
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts transactions matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
