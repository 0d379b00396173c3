package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Trend is the qualitative price direction derived from the percent change.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Percent-change thresholds for the trend switch.
var (
	trendUpThreshold   = decimal.NewFromFloat(0.1)
	trendDownThreshold = decimal.NewFromFloat(-0.1)
)

// TrendFromChangePercent maps a percent change onto a trend using the fixed
// ±0.1 thresholds. Every quote must satisfy this rule regardless of source.
func TrendFromChangePercent(changePercent decimal.Decimal) Trend {
	switch {
	case changePercent.GreaterThan(trendUpThreshold):
		return TrendUp
	case changePercent.LessThan(trendDownThreshold):
		return TrendDown
	default:
		return TrendStable
	}
}

// NewsItem is a descriptive news blurb attached to a commodity.
type NewsItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// Commodity is the canonical quote entity produced by the aggregator.
// A fresh immutable snapshot is built on every aggregation cycle.
type Commodity struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	NameDe        string          `json:"nameDe"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	Unit          string          `json:"unit"`
	LastUpdated   time.Time       `json:"lastUpdated"`
	Trend         Trend           `json:"trend"`
	Icon          string          `json:"icon"`
	Source        string          `json:"source"`
	News          []NewsItem      `json:"news"`
}

func (c *Commodity) Validate() error {
	if c.ID == "" {
		return errors.New("id is required")
	}
	if c.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if c.Currency == "" {
		return errors.New("currency is required")
	}
	if c.Unit == "" {
		return errors.New("unit is required")
	}
	if c.Trend != TrendFromChangePercent(c.ChangePercent) {
		return errors.New("trend does not match change percent")
	}
	return nil
}

// PricePoint is a single day of the synthetic chart history.
type PricePoint struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}
