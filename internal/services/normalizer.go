package services

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/rohmon/backend/internal/errors"
	"github.com/rohmon/backend/internal/models"
)

// Normalizer converts raw source records into canonical commodity quotes.
type Normalizer struct {
	now func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// Normalize builds the canonical quote for a raw record. Numeric fields that
// fail to parse become zero rather than failing the cycle; a record whose
// identifier does not match known metadata fails with UnknownCommodityError.
func (n *Normalizer) Normalize(raw *RawQuote, meta models.CommodityMeta) (*models.Commodity, error) {
	if meta.ID == "" || raw.CommodityID != meta.ID {
		return nil, &apperrors.UnknownCommodityError{CommodityID: raw.CommodityID}
	}

	price := parseDecimal(raw.Price)
	change := parseDecimal(raw.Change)
	changePercent := parseDecimal(raw.ChangePercent)

	currency := raw.Currency
	if currency == "" {
		currency = meta.Currency
	}

	now := n.now().UTC()
	lastUpdated := raw.Timestamp
	if lastUpdated.IsZero() {
		lastUpdated = now
	}

	return &models.Commodity{
		ID:            meta.ID,
		Name:          meta.Name,
		NameDe:        meta.NameDe,
		Price:         price,
		Currency:      currency,
		Change:        change,
		ChangePercent: changePercent,
		Unit:          meta.Unit,
		LastUpdated:   lastUpdated,
		Trend:         models.TrendFromChangePercent(changePercent),
		Icon:          meta.Icon,
		Source:        raw.Source,
		News:          NewsFor(meta.ID, now),
	}, nil
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
