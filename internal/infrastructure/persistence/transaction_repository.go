package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/sales"
	"github.com/salestrack/backend/internal/domain/shared"
	"github.com/salestrack/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByID finds a transaction by ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns transactions matching the filter, most recent first
func (r *GormTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Transaction, error) {
	var transactionModels []models.TransactionModel

	query := r.db.WithContext(ctx).Model(&models.TransactionModel{})
	query = applyFilter(query, filter)
	if filter.OrderBy == "" {
		query = query.Order("transaction_date DESC")
	}

	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	return toDomainTransactions(transactionModels), nil
}

// FindBySeller returns every transaction recorded for the given seller
func (r *GormTransactionRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]sales.Transaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("transaction_date ASC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(transactionModels), nil
}

// FindByDateRange returns transactions with transaction_date in [start, end).
// The start boundary is inclusive, the end boundary exclusive.
func (r *GormTransactionRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]sales.Transaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Order("transaction_date ASC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(transactionModels), nil
}

// Save inserts or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, tx *sales.Transaction) error {
	model := models.TransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a transaction by ID
func (r *GormTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of transactions matching the filter
func (r *GormTransactionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.TransactionModel{})
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func toDomainTransactions(transactionModels []models.TransactionModel) []sales.Transaction {
	transactions := make([]sales.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = *transactionModels[i].ToDomain()
	}
	return transactions
}
