package httpadapter

import "net/http"

// handleMetrics returns the aggregated per-channel metrics for the
// stored records. It accepts optional `channel`, `from` and `to`
// (RFC3339) query parameters. Invalid parameters result in HTTP 400.
// An empty record set yields an empty JSON object, not an error.
func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics, err := h.svc.ChannelMetrics(r.Context(), filter)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, metrics)
}
