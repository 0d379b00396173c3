package services

import (
	"context"
)

// fallbackEntry is a last-known-good price/change pair.
type fallbackEntry struct {
	price         string
	change        string
	changePercent string
}

// fallbackTable holds compiled-in last-known-good data per commodity.
// "wheat" aliases the flour entry so both spellings resolve identically.
var fallbackTable = map[string]fallbackEntry{
	"coffee": {price: "1.85", change: "0.03", changePercent: "1.6"},
	"sugar":  {price: "620", change: "15", changePercent: "2.5"},
	"cocoa":  {price: "2890", change: "-45", changePercent: "-1.5"},
	"flour":  {price: "0.65", change: "0", changePercent: "0"},
	"wheat":  {price: "0.65", change: "0", changePercent: "0"},
	"butter": {price: "6.85", change: "0.12", changePercent: "1.8"},
}

// FallbackSource is the guaranteed-success terminal entry of every source
// chain. Commodities absent from the table get price 100 and change 0.
type FallbackSource struct{}

func NewFallbackSource() *FallbackSource { return &FallbackSource{} }

func (s *FallbackSource) Name() string { return "mock" }

func (s *FallbackSource) FetchQuote(_ context.Context, commodityID string) (*RawQuote, error) {
	entry, ok := fallbackTable[commodityID]
	if !ok {
		entry = fallbackEntry{price: "100", change: "0", changePercent: "0"}
	}
	return &RawQuote{
		CommodityID:   commodityID,
		Price:         entry.price,
		Change:        entry.change,
		ChangePercent: entry.changePercent,
		Source:        s.Name(),
	}, nil
}
