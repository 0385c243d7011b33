package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"adroi/internal/core/domain"
	"adroi/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter
// for HTTP. It holds an AnalysisUseCase to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
type Handler struct {
	svc    port.AnalysisUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// usecase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.AnalysisUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/records", h.handleUploadRecords)
		r.Post("/records/import", h.handleImportRecords)
		r.Get("/metrics", h.handleMetrics)
		r.Post("/analysis", h.handleRunAnalysis)
		r.Get("/analysis/{id}/export", h.handleExportPlan)
		r.Get("/report", h.handleReport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeDomainError maps core errors onto HTTP status codes. Invalid
// input is the caller's fault (400); a degenerate allocation is a valid
// request over data the formula cannot handle (422). Anything else is
// logged and hidden behind a generic 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrDegenerateAllocation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// parseFilter reads the optional channel/from/to query parameters.
// Timestamps are RFC3339.
func parseFilter(q url.Values) (domain.RecordFilter, error) {
	var filter domain.RecordFilter
	filter.Channel = q.Get("channel")
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid 'from' timestamp")
		}
		filter.From = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid 'to' timestamp")
		}
		filter.To = t
	}
	return filter, nil
}
