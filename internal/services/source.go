package services

import (
	"context"
	"time"
)

// RawQuote is the unnormalized record returned by a quote source. Numeric
// fields stay strings until normalization so that a malformed upstream value
// degrades to zero instead of aborting the aggregation cycle.
type RawQuote struct {
	CommodityID   string
	Price         string
	Change        string
	ChangePercent string
	Currency      string
	// Timestamp is the source-reported freshness; zero when the source has none.
	Timestamp time.Time
	Source    string
}

// QuoteSource fetches raw quote data for one commodity from one upstream.
// FetchQuote performs at most one round trip, never retries internally, and
// converts every failure into an error instead of panicking across the
// boundary.
type QuoteSource interface {
	Name() string
	FetchQuote(ctx context.Context, commodityID string) (*RawQuote, error)
}
