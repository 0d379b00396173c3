package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTrendFromChangePercent(t *testing.T) {
	tests := []struct {
		name          string
		changePercent string
		expected      Trend
	}{
		{name: "clearly positive", changePercent: "1.6", expected: TrendUp},
		{name: "clearly negative", changePercent: "-1.5", expected: TrendDown},
		{name: "zero", changePercent: "0", expected: TrendStable},
		{name: "exactly at upper threshold", changePercent: "0.1", expected: TrendStable},
		{name: "just above upper threshold", changePercent: "0.11", expected: TrendUp},
		{name: "exactly at lower threshold", changePercent: "-0.1", expected: TrendStable},
		{name: "just below lower threshold", changePercent: "-0.11", expected: TrendDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct := decimal.RequireFromString(tt.changePercent)
			assert.Equal(t, tt.expected, TrendFromChangePercent(pct))
		})
	}
}

func TestCommodityValidate(t *testing.T) {
	valid := func() *Commodity {
		return &Commodity{
			ID:            "coffee",
			Name:          "Coffee",
			Price:         decimal.RequireFromString("1.85"),
			Currency:      "USD",
			Change:        decimal.RequireFromString("0.03"),
			ChangePercent: decimal.RequireFromString("1.6"),
			Unit:          "lb",
			LastUpdated:   time.Now(),
			Trend:         TrendUp,
		}
	}

	t.Run("valid quote", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("negative price", func(t *testing.T) {
		c := valid()
		c.Price = decimal.RequireFromString("-1")
		assert.Error(t, c.Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		c := valid()
		c.ID = ""
		assert.Error(t, c.Validate())
	})

	t.Run("trend inconsistent with change percent", func(t *testing.T) {
		c := valid()
		c.Trend = TrendDown
		assert.Error(t, c.Validate())
	})
}

func TestTrackedCommoditiesOrder(t *testing.T) {
	metas := TrackedCommodities()
	assert.Len(t, metas, 5)
	assert.Equal(t, "butter", metas[len(metas)-1].ID, "butter must always come last")
	assert.Empty(t, metas[len(metas)-1].ChartSymbol, "butter has no live upstream")

	// Returned slice is a copy; mutating it must not leak into the table.
	metas[0].ID = "mutated"
	again := TrackedCommodities()
	assert.Equal(t, "coffee", again[0].ID)
}

func TestMetaByID(t *testing.T) {
	m, ok := MetaByID("cocoa")
	assert.True(t, ok)
	assert.Equal(t, "Kakaopreise", m.NameDe)
	assert.Equal(t, "CC=F", m.ChartSymbol)

	_, ok = MetaByID("gold")
	assert.False(t, ok)
}
