package services

import (
	"context"
	"sync"
	"time"
)

// MinIntervalSource wraps a live source and enforces a minimum time between
// successive calls toward that upstream. Callers wait until the interval has
// elapsed since the previous call, or return early when the context ends.
type MinIntervalSource struct {
	src      QuoteSource
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func NewMinIntervalSource(src QuoteSource, interval time.Duration) *MinIntervalSource {
	return &MinIntervalSource{src: src, interval: interval}
}

func (m *MinIntervalSource) Name() string { return m.src.Name() }

func (m *MinIntervalSource) FetchQuote(ctx context.Context, commodityID string) (*RawQuote, error) {
	if m.interval > 0 {
		m.mu.Lock()
		wait := time.Until(m.last.Add(m.interval))
		m.mu.Unlock()
		if wait > 0 {
			t := time.NewTimer(wait)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-t.C:
			}
		}
	}

	raw, err := m.src.FetchQuote(ctx, commodityID)

	if m.interval > 0 {
		m.mu.Lock()
		m.last = time.Now()
		m.mu.Unlock()
	}
	return raw, err
}
