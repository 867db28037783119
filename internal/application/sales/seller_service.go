package sales

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/sales"
	"github.com/salestrack/backend/internal/domain/shared"
)

// SellerService handles seller-related business operations
type SellerService struct {
	sellerRepo sales.SellerRepository
	cache      AnalyticsCache
}

// NewSellerService creates a new SellerService. The cache may be nil when
// analytics caching is disabled.
func NewSellerService(sellerRepo sales.SellerRepository, cache AnalyticsCache) *SellerService {
	return &SellerService{
		sellerRepo: sellerRepo,
		cache:      cache,
	}
}

// Create registers a new seller
func (s *SellerService) Create(ctx context.Context, req CreateSellerRequest) (*SellerResponse, error) {
	seller, err := sales.NewSeller(req.Name, req.ContactInfo)
	if err != nil {
		return nil, err
	}

	if err := s.sellerRepo.Save(ctx, seller); err != nil {
		return nil, err
	}

	// A new seller has an implicit total of zero and must show up in
	// under-threshold answers immediately.
	s.invalidateCache(ctx)

	response := ToSellerResponse(seller)
	return &response, nil
}

// GetByID retrieves a seller by ID
func (s *SellerService) GetByID(ctx context.Context, sellerID uuid.UUID) (*SellerResponse, error) {
	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	response := ToSellerResponse(seller)
	return &response, nil
}

// List retrieves a paginated list of sellers
func (s *SellerService) List(ctx context.Context, filter ListFilter) ([]SellerResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	sellers, err := s.sellerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.sellerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSellerResponses(sellers), total, nil
}

// Update applies a best-effort partial update to a seller. Blank values are
// ignored rather than rejected; the remaining fields are still applied.
func (s *SellerService) Update(ctx context.Context, sellerID uuid.UUID, req UpdateSellerRequest) (*SellerResponse, error) {
	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		if err := seller.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactInfo != nil && strings.TrimSpace(*req.ContactInfo) != "" {
		if err := seller.UpdateContactInfo(*req.ContactInfo); err != nil {
			return nil, err
		}
	}

	if err := s.sellerRepo.Save(ctx, seller); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	response := ToSellerResponse(seller)
	return &response, nil
}

// Delete removes a seller. Deleting a seller that does not exist is an
// error, not a no-op.
func (s *SellerService) Delete(ctx context.Context, sellerID uuid.UUID) error {
	if _, err := s.sellerRepo.FindByID(ctx, sellerID); err != nil {
		return err
	}

	if err := s.sellerRepo.Delete(ctx, sellerID); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *SellerService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	// Cache failures must not fail the write itself.
	_ = s.cache.InvalidateAll(ctx)
}
