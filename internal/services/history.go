package services

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rohmon/backend/internal/models"
)

// GeneratePriceHistory builds a synthetic daily history around a base price
// for charting. Purely presentational; values random-walk within ±5% per day
// and never go negative.
func GeneratePriceHistory(basePrice decimal.Decimal, days int) []models.PricePoint {
	if days <= 0 {
		days = 30
	}
	history := make([]models.PricePoint, 0, days+1)
	current, _ := basePrice.Float64()

	for i := days; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		variation := (rand.Float64() - 0.5) * 0.1
		current = current * (1 + variation)
		if current < 0 {
			current = 0
		}
		history = append(history, models.PricePoint{
			Date:  date.Format("2006-01-02"),
			Price: decimal.NewFromFloat(current).Round(2),
		})
	}
	return history
}
