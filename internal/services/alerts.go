package services

import (
	"github.com/shopspring/decimal"

	"github.com/rohmon/backend/internal/models"
)

// Fixed alert thresholds on the absolute percent change. Not configurable.
var (
	criticalThreshold = decimal.NewFromInt(5)
	warningThreshold  = decimal.NewFromInt(2)
)

// ClassifyAlerts partitions quotes into critical (>5%) and warning (2–5%]
// bands by absolute percent change. The partition is stable: input order is
// preserved within each band. Exactly 5% is a warning, not critical.
func ClassifyAlerts(quotes []*models.Commodity) *models.AlertReport {
	report := &models.AlertReport{
		Critical: make([]*models.Commodity, 0),
		Warnings: make([]*models.Commodity, 0),
	}
	for _, q := range quotes {
		abs := q.ChangePercent.Abs()
		switch {
		case abs.GreaterThan(criticalThreshold):
			report.Critical = append(report.Critical, q)
		case abs.GreaterThan(warningThreshold):
			report.Warnings = append(report.Warnings, q)
		}
	}
	return report
}
