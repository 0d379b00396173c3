package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rohmon/backend/internal/models"
)

// stubSource is a scriptable QuoteSource for aggregator tests.
type stubSource struct {
	name string
	fn   func(ctx context.Context, commodityID string) (*RawQuote, error)
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchQuote(ctx context.Context, commodityID string) (*RawQuote, error) {
	return s.fn(ctx, commodityID)
}

func failingSource(name string) *stubSource {
	return &stubSource{name: name, fn: func(context.Context, string) (*RawQuote, error) {
		return nil, errors.New("unavailable")
	}}
}

func metasByID(t *testing.T, ids ...string) []models.CommodityMeta {
	t.Helper()
	metas := make([]models.CommodityMeta, 0, len(ids))
	for _, id := range ids {
		m, ok := models.MetaByID(id)
		if !ok {
			t.Fatalf("missing metadata for %s", id)
		}
		metas = append(metas, m)
	}
	return metas
}

func TestAggregateCardinalityAndOrder(t *testing.T) {
	agg := NewAggregator([]QuoteSource{failingSource("a")}, NewNormalizer(), time.Second, nil)

	metas := models.TrackedCommodities()
	quotes := agg.Aggregate(context.Background(), metas)

	if len(quotes) != len(metas) {
		t.Fatalf("got %d quotes for %d inputs", len(quotes), len(metas))
	}
	for i, q := range quotes {
		if q.ID != metas[i].ID {
			t.Errorf("quote[%d] = %s, want %s (input order)", i, q.ID, metas[i].ID)
		}
	}
	if quotes[len(quotes)-1].ID != "butter" {
		t.Errorf("last quote = %s, want butter", quotes[len(quotes)-1].ID)
	}
}

func TestAggregateAllSourcesFailUsesFallback(t *testing.T) {
	agg := NewAggregator([]QuoteSource{failingSource("a"), failingSource("b")}, NewNormalizer(), time.Second, nil)

	quotes := agg.Aggregate(context.Background(), metasByID(t, "coffee", "sugar", "butter"))

	expected := []struct {
		id     string
		price  string
		change string
	}{
		{id: "coffee", price: "1.85", change: "0.03"},
		{id: "sugar", price: "620", change: "15"},
		{id: "butter", price: "6.85", change: "0.12"},
	}
	for i, want := range expected {
		q := quotes[i]
		if q.ID != want.id {
			t.Fatalf("quote[%d] = %s, want %s", i, q.ID, want.id)
		}
		if !q.Price.Equal(decimal.RequireFromString(want.price)) {
			t.Errorf("%s price = %s, want %s", want.id, q.Price, want.price)
		}
		if !q.Change.Equal(decimal.RequireFromString(want.change)) {
			t.Errorf("%s change = %s, want %s", want.id, q.Change, want.change)
		}
		if q.Source != "mock" {
			t.Errorf("%s source = %s, want mock", want.id, q.Source)
		}
	}
}

func TestAggregateUnknownIDGetsDefaultFallback(t *testing.T) {
	agg := NewAggregator(nil, NewNormalizer(), time.Second, nil)

	quotes := agg.Aggregate(context.Background(), []models.CommodityMeta{{
		ID: "saffron", Name: "Saffron", NameDe: "Safran", Currency: "EUR", Unit: "g",
	}})

	if len(quotes) != 1 {
		t.Fatalf("got %d quotes, want 1", len(quotes))
	}
	if !quotes[0].Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("price = %s, want default 100", quotes[0].Price)
	}
	if !quotes[0].Change.IsZero() {
		t.Errorf("change = %s, want 0", quotes[0].Change)
	}
}

func TestAggregateFirstSuccessWins(t *testing.T) {
	high := &stubSource{name: "scraped", fn: func(_ context.Context, id string) (*RawQuote, error) {
		return &RawQuote{CommodityID: id, Price: "2.50", ChangePercent: "3.0", Source: "scraped"}, nil
	}}
	lowCalled := false
	low := &stubSource{name: "yahoo", fn: func(_ context.Context, id string) (*RawQuote, error) {
		lowCalled = true
		return &RawQuote{CommodityID: id, Price: "9.99", Source: "yahoo"}, nil
	}}

	agg := NewAggregator([]QuoteSource{high, low}, NewNormalizer(), time.Second, nil)
	quotes := agg.Aggregate(context.Background(), metasByID(t, "coffee"))

	if quotes[0].Source != "scraped" {
		t.Errorf("source = %s, want the higher-precedence scraped", quotes[0].Source)
	}
	if !quotes[0].Price.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("price = %s, want 2.50", quotes[0].Price)
	}
	if lowCalled {
		t.Error("lower-precedence source must not be called after a success")
	}
}

func TestAggregateTimeoutFallsThrough(t *testing.T) {
	// First source blocks until its per-call timeout fires; the second one
	// answers. Other commodities are unaffected.
	hanging := &stubSource{name: "slow", fn: func(ctx context.Context, _ string) (*RawQuote, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	backup := &stubSource{name: "backup", fn: func(_ context.Context, id string) (*RawQuote, error) {
		return &RawQuote{CommodityID: id, Price: "3.33", Source: "backup"}, nil
	}}

	agg := NewAggregator([]QuoteSource{hanging, backup}, NewNormalizer(), 20*time.Millisecond, nil)
	quotes := agg.Aggregate(context.Background(), metasByID(t, "coffee", "sugar"))

	if len(quotes) != 2 {
		t.Fatalf("got %d quotes, want 2", len(quotes))
	}
	for _, q := range quotes {
		if q.Source != "backup" {
			t.Errorf("%s source = %s, want backup", q.ID, q.Source)
		}
		if !q.Price.Equal(decimal.RequireFromString("3.33")) {
			t.Errorf("%s price = %s, want 3.33", q.ID, q.Price)
		}
	}
}

func TestAggregateIsolatesPerCommodityFailure(t *testing.T) {
	// Sugar's fetch blows up; coffee still resolves live and sugar degrades
	// to the fallback table.
	picky := &stubSource{name: "picky", fn: func(_ context.Context, id string) (*RawQuote, error) {
		if id != "coffee" {
			return nil, errors.New("boom")
		}
		return &RawQuote{CommodityID: id, Price: "2.00", Source: "picky"}, nil
	}}

	agg := NewAggregator([]QuoteSource{picky}, NewNormalizer(), time.Second, nil)
	quotes := agg.Aggregate(context.Background(), metasByID(t, "coffee", "sugar"))

	if quotes[0].Source != "picky" {
		t.Errorf("coffee source = %s, want picky", quotes[0].Source)
	}
	if quotes[1].Source != "mock" {
		t.Errorf("sugar source = %s, want mock", quotes[1].Source)
	}
	if !quotes[1].Price.Equal(decimal.RequireFromString("620")) {
		t.Errorf("sugar price = %s, want fallback 620", quotes[1].Price)
	}
}

func TestAggregateNormalizationFailureFallsThrough(t *testing.T) {
	// A source answering with the wrong identifier fails normalization and
	// is treated like an adapter failure.
	confused := &stubSource{name: "confused", fn: func(_ context.Context, _ string) (*RawQuote, error) {
		return &RawQuote{CommodityID: "gold", Price: "9000", Source: "confused"}, nil
	}}

	agg := NewAggregator([]QuoteSource{confused}, NewNormalizer(), time.Second, nil)
	quotes := agg.Aggregate(context.Background(), metasByID(t, "coffee"))

	if quotes[0].Source != "mock" {
		t.Errorf("source = %s, want mock", quotes[0].Source)
	}
}

func TestAggregateMonotonicLastUpdated(t *testing.T) {
	later := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)

	ts := later
	source := &stubSource{name: "clock", fn: func(_ context.Context, id string) (*RawQuote, error) {
		return &RawQuote{CommodityID: id, Price: "1.00", Timestamp: ts, Source: "clock"}, nil
	}}

	agg := NewAggregator([]QuoteSource{source}, NewNormalizer(), time.Second, nil)
	metas := metasByID(t, "coffee")

	first := agg.Aggregate(context.Background(), metas)
	if !first[0].LastUpdated.Equal(later) {
		t.Fatalf("first lastUpdated = %s, want %s", first[0].LastUpdated, later)
	}

	// Second cycle reports an older timestamp; the watermark must hold.
	ts = earlier
	second := agg.Aggregate(context.Background(), metas)
	if !second[0].LastUpdated.Equal(later) {
		t.Errorf("second lastUpdated = %s, want clamped %s", second[0].LastUpdated, later)
	}
}

func TestAggregateStopsBetweenIterationsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	source := &stubSource{name: "once", fn: func(_ context.Context, id string) (*RawQuote, error) {
		calls++
		cancel()
		return &RawQuote{CommodityID: id, Price: "1.00", Source: "once"}, nil
	}}

	agg := NewAggregator([]QuoteSource{source}, NewNormalizer(), time.Second, nil)
	quotes := agg.Aggregate(ctx, metasByID(t, "coffee", "sugar", "butter"))

	if calls != 1 {
		t.Errorf("source called %d times, want 1", calls)
	}
	if len(quotes) != 1 {
		t.Errorf("got %d quotes after cancellation, want 1", len(quotes))
	}
}
