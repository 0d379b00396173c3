package repositories

import (
	"context"

	"github.com/rohmon/backend/internal/models"
)

// ScrapedPriceRepository persists and reads scraped commodity price rows.
type ScrapedPriceRepository interface {
	Insert(ctx context.Context, row *models.ScrapedPrice) error
	// Latest returns the most recent row for a commodity, or nil when none exists.
	Latest(ctx context.Context, commodityID string) (*models.ScrapedPrice, error)
	// Migrate creates the backing table when it does not exist yet.
	Migrate(ctx context.Context) error
}
