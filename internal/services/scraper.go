package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rohmon/backend/internal/models"
	"github.com/rohmon/backend/internal/repositories"
)

// ScraperService pulls a live upstream quote for a commodity and persists it
// as a scraped row, feeding the highest-precedence source of later cycles.
type ScraperService struct {
	source QuoteSource
	repo   repositories.ScrapedPriceRepository
	log    *zap.Logger
}

func NewScraperService(source QuoteSource, repo repositories.ScrapedPriceRepository, log *zap.Logger) *ScraperService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScraperService{source: source, repo: repo, log: log}
}

// Scrape fetches the current upstream quote for a commodity and inserts a
// scraped row. Commodities without an upstream symbol cannot be scraped.
func (s *ScraperService) Scrape(ctx context.Context, commodityID string) (*models.ScrapedPrice, error) {
	meta, ok := models.MetaByID(commodityID)
	if !ok {
		return nil, fmt.Errorf("unknown commodity %q", commodityID)
	}
	if meta.ChartSymbol == "" {
		return nil, fmt.Errorf("commodity %q has no upstream symbol", commodityID)
	}

	raw, err := s.source.FetchQuote(ctx, commodityID)
	if err != nil {
		return nil, fmt.Errorf("fetch %s quote: %w", commodityID, err)
	}

	price, err := decimal.NewFromString(raw.Price)
	if err != nil {
		return nil, fmt.Errorf("unusable price %q for %s", raw.Price, commodityID)
	}

	currency := raw.Currency
	if currency == "" {
		currency = meta.Currency
	}
	row := &models.ScrapedPrice{
		CommodityID: commodityID,
		Price:       price,
		Currency:    currency,
		SourceURL:   meta.SourceURL,
		ScrapedAt:   time.Now().UTC(),
	}
	if change, err := decimal.NewFromString(raw.Change); err == nil {
		row.ChangeAmount = decimal.NewNullDecimal(change)
	}
	if pct, err := decimal.NewFromString(raw.ChangePercent); err == nil {
		row.ChangePercent = decimal.NewNullDecimal(pct)
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, err
	}

	s.log.Info("scraped commodity price",
		zap.String("commodity", commodityID),
		zap.String("price", price.String()),
		zap.String("currency", currency))
	return row, nil
}
