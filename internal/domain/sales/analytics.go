package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimeWindow is a half-open time interval [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
// Start is inclusive, End is exclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// IsEmpty reports whether the window contains no instants at all.
// Inverted windows (Start after End) are empty, not an error.
func (w TimeWindow) IsEmpty() bool {
	return !w.Start.Before(w.End)
}

// DayWindow returns the half-open 24-hour window covering the calendar
// day of t, in t's location: [00:00 of the day, 00:00 of the next day).
func DayWindow(t time.Time) TimeWindow {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return TimeWindow{Start: start, End: start.AddDate(0, 0, 1)}
}

// FilterByWindow returns the transactions whose date falls inside the window.
// The input slice is never modified.
func FilterByWindow(transactions []Transaction, window TimeWindow) []Transaction {
	if window.IsEmpty() {
		return nil
	}

	var filtered []Transaction
	for _, tx := range transactions {
		if window.Contains(tx.TransactionDate) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// TotalsBySeller groups transactions by seller and reduces each group's
// amounts with exact decimal addition, starting from zero. Sellers with no
// transactions in the input are absent from the result. Transactions with
// a negative amount violate the domain invariant and are skipped.
func TotalsBySeller(transactions []Transaction) map[uuid.UUID]decimal.Decimal {
	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Amount.IsNegative() {
			continue
		}
		totals[tx.SellerID] = totals[tx.SellerID].Add(tx.Amount)
	}
	return totals
}

// MostProductiveSellerID returns the seller with the highest transaction
// total among the given transactions. When several sellers share the
// maximum total, the one with the lexicographically smallest UUID wins, so
// the result is deterministic for identical input. The second return value
// is false when there are no transactions to rank.
func MostProductiveSellerID(transactions []Transaction) (uuid.UUID, bool) {
	totals := TotalsBySeller(transactions)
	if len(totals) == 0 {
		return uuid.Nil, false
	}

	var (
		bestID    uuid.UUID
		bestTotal decimal.Decimal
		found     bool
	)
	for id, total := range totals {
		switch {
		case !found,
			total.GreaterThan(bestTotal),
			total.Equal(bestTotal) && id.String() < bestID.String():
			bestID = id
			bestTotal = total
			found = true
		}
	}
	return bestID, true
}

// BusiestDay buckets the transactions by calendar date (the civil date of
// TransactionDate, as stored) and returns the half-open 24-hour window of
// the date with the most transactions. When several dates share the maximum
// count the earliest date wins. The second return value is false when there
// are no transactions.
func BusiestDay(transactions []Transaction) (TimeWindow, bool) {
	counts := make(map[time.Time]int)
	for _, tx := range transactions {
		counts[DayWindow(tx.TransactionDate).Start]++
	}
	if len(counts) == 0 {
		return TimeWindow{}, false
	}

	var (
		bestDay   time.Time
		bestCount int
	)
	for day, count := range counts {
		if count > bestCount || (count == bestCount && day.Before(bestDay)) {
			bestDay = day
			bestCount = count
		}
	}
	return TimeWindow{Start: bestDay, End: bestDay.AddDate(0, 0, 1)}, true
}
