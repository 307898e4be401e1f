package models

import "fmt"

// BudgetTier is one named spending ceiling. A nil UpperLimitCents means
// the tier is unbounded and may only appear last in a table.
type BudgetTier struct {
	Name            string `json:"name"`
	UpperLimitCents *int64 `json:"upper_limit_cents,omitempty"`
}

// Matches reports whether a price falls inside the tier's cumulative
// range. Matching runs from zero: any price at or below the ceiling
// qualifies, boundary included. Unbounded tiers match everything.
func (t BudgetTier) Matches(priceCents int64) bool {
	if t.UpperLimitCents == nil {
		return true
	}
	return priceCents <= *t.UpperLimitCents
}

// ExclusiveUpperBound converts the tier's inclusive "up to N cents"
// ceiling into the exclusive bound N+1 used when the filter is expressed
// over a half-open cost interval, so a price exactly at the ceiling is
// retained. The second return is false for unbounded tiers.
func (t BudgetTier) ExclusiveUpperBound() (int64, bool) {
	if t.UpperLimitCents == nil {
		return 0, false
	}
	return *t.UpperLimitCents + 1, true
}

// BudgetTable is the ordered tier enumeration.
type BudgetTable struct {
	Tiers []BudgetTier
}

// NewBudgetTable validates that limits are strictly increasing and that
// only the final tier may be unbounded.
func NewBudgetTable(tiers ...BudgetTier) (*BudgetTable, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("budget table requires at least one tier")
	}
	var prev *int64
	for i, t := range tiers {
		if t.UpperLimitCents == nil {
			if i != len(tiers)-1 {
				return nil, fmt.Errorf("tier %q: only the final tier may be unbounded", t.Name)
			}
			continue
		}
		if *t.UpperLimitCents < 0 {
			return nil, fmt.Errorf("tier %q: upper limit must be non-negative, got %d", t.Name, *t.UpperLimitCents)
		}
		if prev != nil && *t.UpperLimitCents <= *prev {
			return nil, fmt.Errorf("tier %q: upper limits must be strictly increasing (%d <= %d)",
				t.Name, *t.UpperLimitCents, *prev)
		}
		prev = t.UpperLimitCents
	}
	return &BudgetTable{Tiers: tiers}, nil
}

// TierByName looks a tier up case-sensitively.
func (bt *BudgetTable) TierByName(name string) (BudgetTier, bool) {
	for _, t := range bt.Tiers {
		if t.Name == name {
			return t, true
		}
	}
	return BudgetTier{}, false
}

func centsLimit(v int64) *int64 { return &v }

// DefaultBudgetTable is the tier ladder served by the API.
func DefaultBudgetTable() *BudgetTable {
	table, err := NewBudgetTable(
		BudgetTier{Name: "FREE", UpperLimitCents: centsLimit(0)},
		BudgetTier{Name: "INEXPENSIVE", UpperLimitCents: centsLimit(1500)},
		BudgetTier{Name: "MODERATE", UpperLimitCents: centsLimit(5000)},
		BudgetTier{Name: "EXPENSIVE", UpperLimitCents: centsLimit(15000)},
		BudgetTier{Name: "VERY_EXPENSIVE", UpperLimitCents: nil},
	)
	if err != nil {
		panic("default budget table is invalid: " + err.Error())
	}
	return table
}
