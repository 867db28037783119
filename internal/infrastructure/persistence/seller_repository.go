package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/sales"
	"github.com/salestrack/backend/internal/domain/shared"
	"github.com/salestrack/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSellerRepository implements SellerRepository using GORM
type GormSellerRepository struct {
	db *gorm.DB
}

// NewGormSellerRepository creates a new GormSellerRepository
func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// FindByID finds a seller by ID
func (r *GormSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Seller, error) {
	var model models.SellerModel
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

// FindAll returns sellers matching the filter
func (r *GormSellerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Seller, error) {
	var sellerModels []models.SellerModel

	query := r.db.WithContext(ctx).Model(&models.SellerModel{})
	query = applyFilter(query, filter)

	if err := query.Find(&sellerModels).Error; err != nil {
		return nil, err
	}

	sellers := make([]sales.Seller, len(sellerModels))
	for i := range sellerModels {
		sellers[i] = *sellerModels[i].ToDomain()
	}
	return sellers, nil
}

// Save inserts or updates a seller
func (r *GormSellerRepository) Save(ctx context.Context, seller *sales.Seller) error {
	model := models.SellerModelFromDomain(seller)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a seller by ID
func (r *GormSellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SellerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of sellers matching the filter
func (r *GormSellerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.SellerModel{})
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Exists reports whether a seller with the given ID exists
func (r *GormSellerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SellerModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies ordering and pagination from a shared.Filter.
// A zero PageSize disables pagination.
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.OrderBy != "" {
		dir := "asc"
		if filter.OrderDir == "desc" {
			dir = "desc"
		}
		query = query.Order(fmt.Sprintf("%s %s", filter.OrderBy, dir))
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}
