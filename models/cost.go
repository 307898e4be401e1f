package models

import (
	"fmt"
	"math"
)

// CostComponents is one ticket tier's pricing for an activity: a base
// cost range plus a service fee, taxed at a fractional percentage
// (0.07 = 7%). An activity may carry several at different price points.
type CostComponents struct {
	MinBaseCostCents int64   `json:"min_base_cost_cents"`
	MaxBaseCostCents int64   `json:"max_base_cost_cents"`
	ServiceFeeCents  int64   `json:"service_fee_cents"`
	TaxPercentage    float64 `json:"tax_percentage"`
}

// NewCostComponents clamps negative base costs to zero and rejects
// negative fees or tax rates.
func NewCostComponents(minBase, maxBase, fee int64, tax float64) (CostComponents, error) {
	if minBase < 0 {
		minBase = 0
	}
	if maxBase < 0 {
		maxBase = 0
	}
	if fee < 0 {
		return CostComponents{}, fmt.Errorf("service fee must be non-negative, got %d", fee)
	}
	if tax < 0 {
		return CostComponents{}, fmt.Errorf("tax percentage must be non-negative, got %f", tax)
	}
	return CostComponents{
		MinBaseCostCents: minBase,
		MaxBaseCostCents: maxBase,
		ServiceFeeCents:  fee,
		TaxPercentage:    tax,
	}, nil
}

// TotalCents is the chargeable ceiling for this ticket tier:
// floor((max base + service fee) * (1 + tax)). The result is floored,
// never rounded.
func (c CostComponents) TotalCents() int64 {
	taxed := float64(c.MaxBaseCostCents+c.ServiceFeeCents) * (1 + c.TaxPercentage)
	return int64(math.Floor(taxed))
}

// MinTotalCents returns the cheapest total across ticket tiers, which is
// the representative price for budget matching. No tiers means the
// activity is free or unticketed: price 0.
func MinTotalCents(tickets []CostComponents) int64 {
	if len(tickets) == 0 {
		return 0
	}
	min := tickets[0].TotalCents()
	for _, t := range tickets[1:] {
		if total := t.TotalCents(); total < min {
			min = total
		}
	}
	return min
}
