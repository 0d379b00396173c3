package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rohmon/backend/internal/models"
	"github.com/rohmon/backend/internal/services"
)

type CommodityHandler struct {
	aggregator services.CommodityAggregator
}

func NewCommodityHandler(aggregator services.CommodityAggregator) *CommodityHandler {
	return &CommodityHandler{aggregator: aggregator}
}

// GET /api/commodities
// Runs one aggregation cycle and returns the fresh quote list.
func (h *CommodityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	quotes := h.aggregator.Aggregate(r.Context(), models.TrackedCommodities())
	json.NewEncoder(w).Encode(quotes)
}

// GET /api/commodities/{id}/history?days=30
// Returns a synthetic chart history around the commodity's current price.
func (h *CommodityHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]
	meta, ok := models.MetaByID(id)
	if !ok {
		http.Error(w, "unknown commodity", http.StatusNotFound)
		return
	}

	days := 30
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if n, err := strconv.Atoi(daysStr); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}

	quotes := h.aggregator.Aggregate(r.Context(), []models.CommodityMeta{meta})
	if len(quotes) == 0 {
		http.Error(w, "no quote available", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(services.GeneratePriceHistory(quotes[0].Price, days))
}

// GET /api/summary
// Dashboard counters over one aggregation cycle.
func (h *CommodityHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	quotes := h.aggregator.Aggregate(r.Context(), models.TrackedCommodities())
	positive := 0
	for _, q := range quotes {
		if q.ChangePercent.IsPositive() {
			positive++
		}
	}
	alerts := services.ClassifyAlerts(quotes)

	json.NewEncoder(w).Encode(map[string]int{
		"tracked":         len(quotes),
		"positive_trends": positive,
		"critical_alerts": len(alerts.Critical),
	})
}
