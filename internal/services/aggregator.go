package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rohmon/backend/internal/models"
)

// Aggregator produces one fresh quote per tracked commodity by trying an
// ordered chain of sources and falling back to compiled-in data. It is the
// sole producer of quotes; a cycle never fails as a whole.
type Aggregator struct {
	sources    []QuoteSource // precedence order; terminal fallback appended at construction
	normalizer *Normalizer
	timeout    time.Duration
	log        *zap.Logger

	mu       sync.Mutex
	lastSeen map[string]time.Time // per-commodity LastUpdated watermark
}

// NewAggregator builds an aggregator over the given chain. Sources are tried
// in slice order; the guaranteed-success fallback is always appended last so
// every commodity yields a quote.
func NewAggregator(sources []QuoteSource, normalizer *Normalizer, timeout time.Duration, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	chain := make([]QuoteSource, 0, len(sources)+1)
	chain = append(chain, sources...)
	chain = append(chain, NewFallbackSource())
	return &Aggregator{
		sources:    chain,
		normalizer: normalizer,
		timeout:    timeout,
		log:        log,
		lastSeen:   make(map[string]time.Time),
	}
}

// Aggregate runs one cycle over the given metadata list. The result has the
// same cardinality and order as the input. Commodities are fetched
// sequentially; one commodity's failure never affects another. When the
// context ends the cycle stops between iterations and returns what it has.
func (a *Aggregator) Aggregate(ctx context.Context, metas []models.CommodityMeta) []*models.Commodity {
	quotes := make([]*models.Commodity, 0, len(metas))

	for _, meta := range metas {
		if ctx.Err() != nil {
			a.log.Warn("aggregation abandoned", zap.Error(ctx.Err()), zap.Int("completed", len(quotes)))
			return quotes
		}
		quotes = append(quotes, a.fetchOne(ctx, meta))
	}
	return quotes
}

func (a *Aggregator) fetchOne(ctx context.Context, meta models.CommodityMeta) *models.Commodity {
	for _, src := range a.sources {
		cctx := ctx
		cancel := func() {}
		if a.timeout > 0 {
			cctx, cancel = context.WithTimeout(ctx, a.timeout)
		}
		raw, err := src.FetchQuote(cctx, meta.ID)
		cancel()
		if err != nil {
			a.log.Debug("source failed",
				zap.String("commodity", meta.ID),
				zap.String("source", src.Name()),
				zap.Error(err))
			continue
		}

		quote, err := a.normalizer.Normalize(raw, meta)
		if err != nil {
			a.log.Debug("normalization failed",
				zap.String("commodity", meta.ID),
				zap.String("source", src.Name()),
				zap.Error(err))
			continue
		}

		a.clampLastUpdated(quote)
		a.log.Debug("quote resolved",
			zap.String("commodity", meta.ID),
			zap.String("source", quote.Source))
		return quote
	}

	// Unreachable with the terminal fallback in place; kept so a
	// misconstructed chain still honors the one-quote-per-input contract.
	quote, _ := a.normalizer.Normalize(&RawQuote{CommodityID: meta.ID, Price: "100", Source: "mock"}, meta)
	a.clampLastUpdated(quote)
	return quote
}

// clampLastUpdated keeps LastUpdated monotonically non-decreasing per
// commodity within one process lifetime.
func (a *Aggregator) clampLastUpdated(quote *models.Commodity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if last, ok := a.lastSeen[quote.ID]; ok && quote.LastUpdated.Before(last) {
		quote.LastUpdated = last
	}
	a.lastSeen[quote.ID] = quote.LastUpdated
}
