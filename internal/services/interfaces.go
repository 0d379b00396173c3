package services

import (
	"context"

	"github.com/rohmon/backend/internal/models"
)

// CommodityAggregator runs one aggregation cycle over tracked commodities.
type CommodityAggregator interface {
	Aggregate(ctx context.Context, metas []models.CommodityMeta) []*models.Commodity
}

// Scraper fetches and persists one commodity's upstream quote.
type Scraper interface {
	Scrape(ctx context.Context, commodityID string) (*models.ScrapedPrice, error)
}

// ReportDispatcher builds and mails the daily digest.
type ReportDispatcher interface {
	BuildDailyReport(ctx context.Context) *models.DailyReport
	SendDailyReport(ctx context.Context, email string) error
}
