package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rohmon/backend/internal/db"
	apperrors "github.com/rohmon/backend/internal/errors"
	"github.com/rohmon/backend/internal/models"
)

type scrapedPriceRepository struct {
	db *db.DB
}

// NewScrapedPriceRepository creates a new scraped price repository
func NewScrapedPriceRepository(database *db.DB) ScrapedPriceRepository {
	return &scrapedPriceRepository{db: database}
}

func (r *scrapedPriceRepository) Insert(ctx context.Context, row *models.ScrapedPrice) error {
	if err := row.Validate(); err != nil {
		return fmt.Errorf("invalid scraped price: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return &apperrors.PersistenceError{Op: "insert scraped price", Err: err}
	}
	return nil
}

func (r *scrapedPriceRepository) Latest(ctx context.Context, commodityID string) (*models.ScrapedPrice, error) {
	var row models.ScrapedPrice
	err := r.db.WithContext(ctx).
		Where("commodity_id = ?", commodityID).
		Order("scraped_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "read latest scraped price", Err: err}
	}
	return &row, nil
}

func (r *scrapedPriceRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.ScrapedPrice{}); err != nil {
		return &apperrors.PersistenceError{Op: "migrate scraped prices", Err: err}
	}
	return nil
}
