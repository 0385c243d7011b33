package httpadapter

import (
	"net/http"
	"strconv"

	"adroi/internal/adapter/usecase"
	"adroi/internal/report"
)

// handleReport renders the textual analysis report for the budget given
// in the `budget` query parameter. It accepts the same optional filter
// parameters as the metrics endpoint and responds with text/plain. The
// report is computed on the fly and nothing is persisted, so a GET here
// has no side effects.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	budget, err := strconv.ParseFloat(q.Get("budget"), 64)
	if err != nil {
		http.Error(w, "invalid budget", http.StatusBadRequest)
		return
	}
	filter, err := parseFilter(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics, err := h.svc.ChannelMetrics(r.Context(), filter)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	plan, err := usecase.OptimizeBudget(metrics, budget)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	summary := usecase.Summarize(metrics, plan, budget)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(report.Format(metrics, plan, summary)))
}
