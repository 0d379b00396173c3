package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rohmon/backend/internal/services"
)

type ScrapeHandler struct {
	scraper services.Scraper
}

func NewScrapeHandler(scraper services.Scraper) *ScrapeHandler {
	return &ScrapeHandler{scraper: scraper}
}

type scrapeResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// POST /api/scrape/{id}
// Triggers one scrape-and-persist round for a commodity.
func (h *ScrapeHandler) HandleScrape(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]
	row, err := h.scraper.Scrape(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(scrapeResponse{Success: false, Error: err.Error()})
		return
	}

	json.NewEncoder(w).Encode(scrapeResponse{Success: true, Data: row})
}
