package models

import "github.com/shopspring/decimal"

// ReportRow is one commodity line of the daily digest email.
type ReportRow struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	NameDe        string          `json:"nameDe"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Unit          string          `json:"unit"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	Trend         Trend           `json:"trend"`
	Icon          string          `json:"icon"`
}

// DailyReport is the dated digest built from one aggregation cycle.
type DailyReport struct {
	Date        string      `json:"date"`
	Commodities []ReportRow `json:"commodities"`
}
