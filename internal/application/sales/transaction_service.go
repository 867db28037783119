package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/sales"
	"github.com/salestrack/backend/internal/domain/shared"
)

// TransactionService handles transaction-related business operations
type TransactionService struct {
	transactionRepo sales.TransactionRepository
	sellerRepo      sales.SellerRepository
	cache           AnalyticsCache
}

// NewTransactionService creates a new TransactionService. The cache may be
// nil when analytics caching is disabled.
func NewTransactionService(
	transactionRepo sales.TransactionRepository,
	sellerRepo sales.SellerRepository,
	cache AnalyticsCache,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		sellerRepo:      sellerRepo,
		cache:           cache,
	}
}

// Create records a new transaction. The referenced seller must exist at
// write time.
func (s *TransactionService) Create(ctx context.Context, req CreateTransactionRequest) (*TransactionResponse, error) {
	seller, err := s.sellerRepo.FindByID(ctx, req.SellerID)
	if err != nil {
		return nil, err
	}

	tx, err := sales.NewTransaction(req.SellerID, req.Amount, sales.PaymentType(req.PaymentType))
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	response := ToTransactionResponse(tx, seller)
	return &response, nil
}

// GetByID retrieves a transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, transactionID uuid.UUID) (*TransactionResponse, error) {
	tx, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	seller, err := s.sellerRepo.FindByID(ctx, tx.SellerID)
	if err != nil {
		return nil, err
	}

	response := ToTransactionResponse(tx, seller)
	return &response, nil
}

// List retrieves a paginated list of transactions
func (s *TransactionService) List(ctx context.Context, filter ListFilter) ([]TransactionResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	transactions, err := s.transactionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.transactionRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses, err := s.toResponses(ctx, transactions)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// Update applies a best-effort partial update to a transaction. Each field
// is validated independently; values that fail validation (unknown seller,
// negative amount, payment type outside the closed set) are dropped
// silently while the remaining fields are still applied.
func (s *TransactionService) Update(ctx context.Context, transactionID uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	tx, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.SellerID != nil {
		exists, err := s.sellerRepo.Exists(ctx, *req.SellerID)
		if err != nil {
			return nil, err
		}
		if exists {
			_ = tx.ReassignSeller(*req.SellerID)
		}
	}
	if req.Amount != nil && !req.Amount.IsNegative() {
		_ = tx.UpdateAmount(*req.Amount)
	}
	if req.PaymentType != nil && sales.PaymentType(*req.PaymentType).IsValid() {
		_ = tx.UpdatePaymentType(sales.PaymentType(*req.PaymentType))
	}

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	seller, err := s.sellerRepo.FindByID(ctx, tx.SellerID)
	if err != nil {
		return nil, err
	}

	response := ToTransactionResponse(tx, seller)
	return &response, nil
}

// Delete removes a transaction. Deleting a transaction that does not exist
// is an error, not a no-op.
func (s *TransactionService) Delete(ctx context.Context, transactionID uuid.UUID) error {
	if _, err := s.transactionRepo.FindByID(ctx, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(ctx, transactionID); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

// toResponses resolves sellers for a batch of transactions, fetching each
// distinct seller once.
func (s *TransactionService) toResponses(ctx context.Context, transactions []sales.Transaction) ([]TransactionResponse, error) {
	sellers := make(map[uuid.UUID]*sales.Seller)
	responses := make([]TransactionResponse, 0, len(transactions))

	for i := range transactions {
		tx := &transactions[i]
		seller, ok := sellers[tx.SellerID]
		if !ok {
			var err error
			seller, err = s.sellerRepo.FindByID(ctx, tx.SellerID)
			if err != nil {
				return nil, err
			}
			sellers[tx.SellerID] = seller
		}
		responses = append(responses, ToTransactionResponse(tx, seller))
	}
	return responses, nil
}

func (s *TransactionService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	// Cache failures must not fail the write itself.
	_ = s.cache.InvalidateAll(ctx)
}
