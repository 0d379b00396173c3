package services

import (
	"context"
	"fmt"

	"github.com/rohmon/backend/internal/repositories"
)

// ScrapedRowSource serves the most recently persisted scraped row for a
// commodity. It is the highest-precedence source in the chain: a fresh
// scrape beats a generic live quote.
type ScrapedRowSource struct {
	repo repositories.ScrapedPriceRepository
}

func NewScrapedRowSource(repo repositories.ScrapedPriceRepository) *ScrapedRowSource {
	return &ScrapedRowSource{repo: repo}
}

func (s *ScrapedRowSource) Name() string { return "scraped" }

func (s *ScrapedRowSource) FetchQuote(ctx context.Context, commodityID string) (*RawQuote, error) {
	row, err := s.repo.Latest(ctx, commodityID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("no scraped row for %s", commodityID)
	}

	raw := &RawQuote{
		CommodityID: commodityID,
		Price:       row.Price.String(),
		Currency:    row.Currency,
		Timestamp:   row.ScrapedAt,
		Source:      s.Name(),
	}
	if row.ChangeAmount.Valid {
		raw.Change = row.ChangeAmount.Decimal.String()
	}
	if row.ChangePercent.Valid {
		raw.ChangePercent = row.ChangePercent.Decimal.String()
	}
	return raw, nil
}
