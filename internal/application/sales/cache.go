package sales

import (
	"context"
	"time"
)

// AnalyticsCache caches serialized analytics query results. Entries must be
// invalidated whenever seller or transaction data changes, so a cached
// answer never outlives the data it was derived from. Implementations live
// in the infrastructure layer; a nil cache disables caching entirely.
type AnalyticsCache interface {
	// Get returns the cached payload for key. The second return value is
	// false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload under key with the given TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// InvalidateAll drops every cached analytics entry
	InvalidateAll(ctx context.Context) error
}
