package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rohmon/backend/internal/services"
)

type ReportHandler struct {
	reports services.ReportDispatcher
}

func NewReportHandler(reports services.ReportDispatcher) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type sendReportRequest struct {
	Email string `json:"email"`
}

// POST /api/reports/send
// Builds today's digest and mails it to the given address.
func (h *ReportHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req sendReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		http.Error(w, "a valid email is required", http.StatusBadRequest)
		return
	}

	if err := h.reports.SendDailyReport(r.Context(), req.Email); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"status": "sent"})
}

// GET /api/reports/preview
// Returns the report payload without dispatching mail.
func (h *ReportHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	json.NewEncoder(w).Encode(h.reports.BuildDailyReport(r.Context()))
}
