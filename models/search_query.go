package models

import (
	"fmt"
	"time"
)

// TimeRange is a half-open [From, To) instant interval.
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewTimeRange rejects empty or inverted ranges.
func NewTimeRange(from, to time.Time) (TimeRange, error) {
	if !from.Before(to) {
		return TimeRange{}, fmt.Errorf("time range start %s must be before end %s", from, to)
	}
	return TimeRange{From: from, To: to}, nil
}

// Contains reports whether the instant falls inside the range,
// inclusive at From and exclusive at To.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// Overlaps reports whether two half-open ranges share any instant.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.From.Before(other.To) && other.From.Before(r.To)
}

// TimeConstraint is the time dimension of a search: either a single
// target local instant, an instant range, or neither (no constraint).
type TimeConstraint struct {
	At     *time.Time
	Window *TimeRange
}

// IsZero reports whether the constraint imposes nothing.
func (tc TimeConstraint) IsZero() bool {
	return tc.At == nil && tc.Window == nil
}

// SearchQuery bundles every filter dimension for one matching
// invocation. Any omitted dimension participates as match-all,
// never as match-none.
type SearchQuery struct {
	Areas       []GeoArea
	CategoryIDs []string
	At          *time.Time
	Window      *TimeRange
	Budget      *BudgetTier
	ExcludedIDs []string
}

// TimeConstraint extracts the query's time dimension.
func (q SearchQuery) TimeConstraint() TimeConstraint {
	return TimeConstraint{At: q.At, Window: q.Window}
}
