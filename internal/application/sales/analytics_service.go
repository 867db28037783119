package sales

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/sales"
	"github.com/salestrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultCacheTTL bounds how long a cached analytics answer may be served.
// Writes invalidate the cache explicitly; the TTL is a backstop.
const DefaultCacheTTL = time.Minute

// AnalyticsService computes read-only derived views over transaction data.
// Every query runs against the store's current data; nothing is mutated.
type AnalyticsService struct {
	transactionRepo sales.TransactionRepository
	sellerRepo      sales.SellerRepository
	cache           AnalyticsCache
	cacheTTL        time.Duration
	logger          *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService. The cache may be nil,
// in which case every query recomputes from the store.
func NewAnalyticsService(
	transactionRepo sales.TransactionRepository,
	sellerRepo sales.SellerRepository,
	cache AnalyticsCache,
	logger *zap.Logger,
) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		transactionRepo: transactionRepo,
		sellerRepo:      sellerRepo,
		cache:           cache,
		cacheTTL:        DefaultCacheTTL,
		logger:          logger,
	}
}

// WithCacheTTL overrides the cache TTL. Non-positive values are ignored.
func (s *AnalyticsService) WithCacheTTL(ttl time.Duration) *AnalyticsService {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
	return s
}

// MostProductiveSeller returns the seller with the highest transaction
// total in the half-open window [start, end). A window with no matching
// transactions, including an inverted one, yields nil rather than an error.
func (s *AnalyticsService) MostProductiveSeller(ctx context.Context, start, end time.Time) (*SellerResponse, error) {
	window := sales.TimeWindow{Start: start, End: end}
	if window.IsEmpty() {
		return nil, nil
	}

	key := fmt.Sprintf("analytics:most_productive:%s:%s",
		start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
	var cached *SellerResponse
	if ok := s.fromCache(ctx, key, &cached); ok {
		return cached, nil
	}

	transactions, err := s.transactionRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	// The repository contract is [start, end) already; re-filtering keeps
	// the boundary semantics independent of the store implementation.
	sellerID, ok := sales.MostProductiveSellerID(sales.FilterByWindow(transactions, window))
	if !ok {
		s.toCache(ctx, key, (*SellerResponse)(nil))
		return nil, nil
	}

	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("most productive seller computed",
		zap.String("seller_id", sellerID.String()),
		zap.Int("transactions_scanned", len(transactions)),
	)

	response := ToSellerResponse(seller)
	s.toCache(ctx, key, &response)
	return &response, nil
}

// SellersWithTotalLessThan returns every seller whose transaction total
// over the entire history is strictly less than the threshold. Sellers
// with no transactions have an implicit total of zero. Results follow the
// store's natural iteration order.
func (s *AnalyticsService) SellersWithTotalLessThan(ctx context.Context, threshold decimal.Decimal) ([]SellerResponse, error) {
	key := "analytics:under_threshold:" + threshold.String()
	var cached []SellerResponse
	if ok := s.fromCache(ctx, key, &cached); ok {
		return cached, nil
	}

	sellers, err := s.sellerRepo.FindAll(ctx, allSellersFilter())
	if err != nil {
		return nil, err
	}

	results := make([]SellerResponse, 0)
	for i := range sellers {
		transactions, err := s.transactionRepo.FindBySeller(ctx, sellers[i].ID)
		if err != nil {
			return nil, err
		}

		total := decimal.Zero
		for _, tx := range transactions {
			if tx.Amount.IsNegative() {
				continue
			}
			total = total.Add(tx.Amount)
		}

		if total.LessThan(threshold) {
			results = append(results, ToSellerResponse(&sellers[i]))
		}
	}

	s.toCache(ctx, key, results)
	return results, nil
}

// BusiestPeriod returns the half-open 24-hour interval covering the
// calendar day on which the seller recorded the most transactions. An
// unknown seller is an error; a known seller with no transactions yields
// nil (absent), distinguishing the two cases.
func (s *AnalyticsService) BusiestPeriod(ctx context.Context, sellerID uuid.UUID) (*PeriodResponse, error) {
	if _, err := s.sellerRepo.FindByID(ctx, sellerID); err != nil {
		return nil, err
	}

	key := "analytics:busiest_period:" + sellerID.String()
	var cached *PeriodResponse
	if ok := s.fromCache(ctx, key, &cached); ok {
		return cached, nil
	}

	transactions, err := s.transactionRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	window, ok := sales.BusiestDay(transactions)
	if !ok {
		s.toCache(ctx, key, (*PeriodResponse)(nil))
		return nil, nil
	}

	response := PeriodResponse{PeriodStart: window.Start, PeriodEnd: window.End}
	s.toCache(ctx, key, &response)
	return &response, nil
}

// allSellersFilter disables pagination for full-table seller scans. The
// under-threshold query must consider every seller, including those with
// zero transactions.
func allSellersFilter() shared.Filter {
	f := shared.DefaultFilter()
	f.Page = 1
	f.PageSize = 0
	return f
}

// fromCache loads a cached value into out. Cache errors degrade to a miss.
func (s *AnalyticsService) fromCache(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("analytics cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// toCache stores a computed value. Cache errors are logged, never surfaced.
func (s *AnalyticsService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
}
