package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostComponents_TotalCents_FloorsNotRounds(t *testing.T) {
	tests := []struct {
		name    string
		maxBase int64
		fee     int64
		tax     float64
		want    int64
	}{
		{"base 100 fee 5 tax 7pct", 100, 5, 0.07, 112},
		{"base 100 fee 8 tax 7pct floors 115.56", 100, 8, 0.07, 115},
		{"no tax", 1000, 250, 0, 1250},
		{"free", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := NewCostComponents(0, tt.maxBase, tt.fee, tt.tax)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, cost.TotalCents())
		})
	}
}

func TestCostComponents_TotalCents_UsesMaxBaseCost(t *testing.T) {
	cost, err := NewCostComponents(500, 1000, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), cost.TotalCents())
}

func TestNewCostComponents_ClampsNegativeBaseCosts(t *testing.T) {
	cost, err := NewCostComponents(-100, -50, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), cost.MinBaseCostCents)
	assert.Equal(t, int64(0), cost.MaxBaseCostCents)
}

func TestNewCostComponents_RejectsNegativeFeeAndTax(t *testing.T) {
	_, err := NewCostComponents(0, 100, -1, 0)
	assert.Error(t, err)
	_, err = NewCostComponents(0, 100, 0, -0.05)
	assert.Error(t, err)
}

func TestMinTotalCents_PicksCheapestTicket(t *testing.T) {
	regular, _ := NewCostComponents(0, 2000, 200, 0.07)
	student, _ := NewCostComponents(0, 1000, 200, 0.07)

	assert.Equal(t, student.TotalCents(), MinTotalCents([]CostComponents{regular, student}))
}

func TestMinTotalCents_UnticketedIsFree(t *testing.T) {
	assert.Equal(t, int64(0), MinTotalCents(nil))
}
