package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ScrapedPrice is a previously-scraped upstream quote persisted for a
// commodity. The newest row per commodity is the highest-precedence source
// during aggregation. Change columns are nullable because not every upstream
// page exposes them.
type ScrapedPrice struct {
	ID            string              `json:"id" gorm:"primaryKey;type:uuid"`
	CommodityID   string              `json:"commodity_id" gorm:"column:commodity_id;index:idx_scraped_commodity_time"`
	Price         decimal.Decimal     `json:"price" gorm:"type:decimal(12,4)"`
	Currency      string              `json:"currency"`
	ChangeAmount  decimal.NullDecimal `json:"change_amount" gorm:"type:decimal(12,4)"`
	ChangePercent decimal.NullDecimal `json:"change_percent" gorm:"type:decimal(8,4)"`
	SourceURL     string              `json:"source_url"`
	ScrapedAt     time.Time           `json:"scraped_at" gorm:"index:idx_scraped_commodity_time"`
	CreatedAt     time.Time           `json:"created_at"`
}

func (ScrapedPrice) TableName() string {
	return "scraped_commodity_prices"
}

func (s *ScrapedPrice) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *ScrapedPrice) Validate() error {
	if s.CommodityID == "" {
		return errors.New("commodity_id is required")
	}
	if s.Price.IsZero() || s.Price.IsNegative() {
		return errors.New("price must be positive")
	}
	if s.Currency == "" {
		return errors.New("currency is required")
	}
	if s.ScrapedAt.IsZero() {
		return errors.New("scraped_at is required")
	}
	return nil
}
