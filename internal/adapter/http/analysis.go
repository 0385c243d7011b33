package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adroi/internal/core/domain"
	"adroi/internal/report"
)

// analysisRequest carries the budget to reallocate plus the optional
// record filter (RFC3339 timestamps).
type analysisRequest struct {
	Budget  float64 `json:"budget"`
	Channel string  `json:"channel,omitempty"`
	From    string  `json:"from,omitempty"`
	To      string  `json:"to,omitempty"`
}

// handleRunAnalysis runs the full pipeline for the budget in the
// request body, persists the plan and returns it as JSON. A degenerate
// allocation (zero aggregate ROI or a zero-spend channel) results in
// HTTP 422 with an actionable message; a non-positive budget in 400.
func (h *Handler) handleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	filter, err := filterFromRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.svc.RunAnalysis(r.Context(), req.Budget, filter)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func filterFromRequest(req analysisRequest) (domain.RecordFilter, error) {
	var filter domain.RecordFilter
	filter.Channel = req.Channel
	if req.From != "" {
		t, err := time.Parse(time.RFC3339, req.From)
		if err != nil {
			return filter, errors.New("invalid 'from' timestamp")
		}
		filter.From = t
	}
	if req.To != "" {
		t, err := time.Parse(time.RFC3339, req.To)
		if err != nil {
			return filter, errors.New("invalid 'to' timestamp")
		}
		filter.To = t
	}
	return filter, nil
}

// handleExportPlan streams a persisted plan as a CSV attachment. It
// expects the {id} path parameter bound by the router. Unknown ids
// result in HTTP 404.
func (h *Handler) handleExportPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing analysis id", http.StatusBadRequest)
		return
	}
	entries, err := h.svc.PlanByID(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	if entries == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "plan_"+id+".csv"))
	if err = report.WritePlanCSV(w, entries); err != nil {
		h.logger.Error("write csv error", slog.Any("error", err))
	}
}
