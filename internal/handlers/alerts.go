package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohmon/backend/internal/models"
	"github.com/rohmon/backend/internal/services"
)

type AlertHandler struct {
	aggregator services.CommodityAggregator
}

func NewAlertHandler(aggregator services.CommodityAggregator) *AlertHandler {
	return &AlertHandler{aggregator: aggregator}
}

// GET /api/alerts
// Classifies the current cycle's quotes into critical and warning bands.
func (h *AlertHandler) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	quotes := h.aggregator.Aggregate(r.Context(), models.TrackedCommodities())
	json.NewEncoder(w).Encode(services.ClassifyAlerts(quotes))
}
