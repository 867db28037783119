package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/sales"
	"github.com/salestrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockSellerRepository is a mock implementation of SellerRepository
type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Seller, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Seller), args.Error(1)
}

func (m *MockSellerRepository) Save(ctx context.Context, seller *sales.Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}

func (m *MockSellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSellerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSellerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Transaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]sales.Transaction, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).([]sales.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]sales.Transaction, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]sales.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *sales.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAnalyticsCache is a mock implementation of AnalyticsCache
type MockAnalyticsCache struct {
	mock.Mock
}

func (m *MockAnalyticsCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockAnalyticsCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockAnalyticsCache) InvalidateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// mapCache is a minimal in-memory cache for tests that need real cache
// behavior rather than call assertions. TTLs are ignored.
type mapCache struct {
	entries map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *mapCache) InvalidateAll(ctx context.Context) error {
	c.entries = make(map[string][]byte)
	return nil
}

// Verify interface compliance
var _ sales.SellerRepository = (*MockSellerRepository)(nil)
var _ sales.TransactionRepository = (*MockTransactionRepository)(nil)
var _ AnalyticsCache = (*MockAnalyticsCache)(nil)
var _ AnalyticsCache = (*mapCache)(nil)

// =============================================================================
// Test Helper Functions
// =============================================================================

func newTestSellerID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func createTestSeller() *sales.Seller {
	seller, _ := sales.NewSeller("Test Seller", "test@example.com")
	seller.ID = newTestSellerID()
	return seller
}

func createTestTransaction(sellerID uuid.UUID, amount string, date time.Time) *sales.Transaction {
	tx, _ := sales.NewTransaction(sellerID, decimal.RequireFromString(amount), sales.PaymentTypeCash)
	tx.TransactionDate = date
	return tx
}
