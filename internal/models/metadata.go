package models

// CommodityMeta is the static description of a tracked commodity. Currency
// and unit are fixed per commodity, not user-configurable.
type CommodityMeta struct {
	ID          string
	Name        string
	NameDe      string
	Currency    string
	Unit        string
	Icon        string
	ChartSymbol string // Yahoo Finance futures symbol, empty when no live source exists
	SourceURL   string
}

// trackedCommodities lists every monitored commodity in display order.
// Butter stays last: it has no live upstream at all.
var trackedCommodities = []CommodityMeta{
	{
		ID:          "coffee",
		Name:        "Coffee",
		NameDe:      "Kaffeepreise",
		Currency:    "USD",
		Unit:        "lb",
		Icon:        "☕",
		ChartSymbol: "KC=F",
		SourceURL:   "https://finance.yahoo.com/quote/KC=F",
	},
	{
		ID:          "sugar",
		Name:        "Sugar",
		NameDe:      "Zuckerernte",
		Currency:    "USD",
		Unit:        "ton",
		Icon:        "🍭",
		ChartSymbol: "SB=F",
		SourceURL:   "https://finance.yahoo.com/quote/SB=F",
	},
	{
		ID:          "cocoa",
		Name:        "Cocoa",
		NameDe:      "Kakaopreise",
		Currency:    "USD",
		Unit:        "ton",
		Icon:        "🍫",
		ChartSymbol: "CC=F",
		SourceURL:   "https://finance.yahoo.com/quote/CC=F",
	},
	{
		ID:          "flour",
		Name:        "Flour",
		NameDe:      "Mehlpreise",
		Currency:    "EUR",
		Unit:        "kg",
		Icon:        "🌾",
		ChartSymbol: "ZW=F",
		SourceURL:   "https://finance.yahoo.com/quote/ZW=F",
	},
	{
		ID:       "butter",
		Name:     "Butter",
		NameDe:   "Butterbörse",
		Currency: "EUR",
		Unit:     "kg",
		Icon:     "🧈",
	},
}

// TrackedCommodities returns a copy of the tracked commodity list.
func TrackedCommodities() []CommodityMeta {
	out := make([]CommodityMeta, len(trackedCommodities))
	copy(out, trackedCommodities)
	return out
}

// MetaByID looks up the static metadata for a commodity identifier.
func MetaByID(id string) (CommodityMeta, bool) {
	for _, m := range trackedCommodities {
		if m.ID == id {
			return m, true
		}
	}
	return CommodityMeta{}, false
}
