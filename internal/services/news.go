package services

import (
	"time"

	"github.com/rohmon/backend/internal/models"
)

// newsEntry is a static blurb template; timestamps are materialized relative
// to the current time when the list is requested.
type newsEntry struct {
	id      string
	title   string
	summary string
	age     time.Duration
	source  string
}

var newsTable = map[string][]newsEntry{
	"coffee": {
		{
			id:      "coffee-scraped-1",
			title:   "Kaffeepreise aus aktueller Marktanalyse",
			summary: "Live-Daten von finanzen.net zeigen aktuelle Marktentwicklung",
			age:     30 * time.Minute,
			source:  "finanzen.net",
		},
		{
			id:      "coffee-scraped-2",
			title:   "Rohkaffee-Futures zeigen Volatilität",
			summary: "Schwankende Preise aufgrund internationaler Handelsbedingungen",
			age:     2 * time.Hour,
			source:  "Commodities Tracker",
		},
	},
	"sugar": {
		{
			id:      "sugar-1",
			title:   "Zuckerernte unter Erwartungen",
			summary: "Wetterbedingte Ernteausfälle stützen die Notierungen",
			age:     time.Hour,
			source:  "Commodities Tracker",
		},
	},
	"cocoa": {
		{
			id:      "cocoa-1",
			title:   "Kakaomarkt bleibt angespannt",
			summary: "Angebotssorgen in Westafrika belasten den Terminmarkt",
			age:     3 * time.Hour,
			source:  "Commodities Tracker",
		},
	},
	"flour": {
		{
			id:      "flour-1",
			title:   "Weizennotierungen seitwärts",
			summary: "Mehlpreise folgen dem ruhigen Weizenmarkt",
			age:     4 * time.Hour,
			source:  "Commodities Tracker",
		},
	},
	"butter": {
		{
			id:      "butter-1",
			title:   "Butterbörse meldet feste Preise",
			summary: "Anhaltende Nachfrage hält das Preisniveau",
			age:     5 * time.Hour,
			source:  "Butterbörse Kempten",
		},
	},
}

// NewsFor returns the static news list for a commodity, newest first.
func NewsFor(commodityID string, now time.Time) []models.NewsItem {
	entries := newsTable[commodityID]
	items := make([]models.NewsItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, models.NewsItem{
			ID:        e.id,
			Title:     e.title,
			Summary:   e.summary,
			Timestamp: now.Add(-e.age),
			Source:    e.source,
		})
	}
	return items
}
