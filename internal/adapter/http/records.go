package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"adroi/internal/adapter/loader"
	"adroi/internal/core/domain"
)

// recordRequest is the JSON shape of one uploaded campaign record.
type recordRequest struct {
	Channel     string    `json:"channel"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Impressions int64     `json:"impressions"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type uploadResponse struct {
	Stored   int      `json:"stored"`
	Warnings []string `json:"warnings,omitempty"`
}

// handleUploadRecords ingests a JSON array of campaign records. The
// whole batch is validated first; any record violating a non-negativity
// constraint rejects the batch with HTTP 400 and nothing is stored. On
// success it returns HTTP 201 with the number of stored records.
func (h *Handler) handleUploadRecords(w http.ResponseWriter, r *http.Request) {
	var reqs []recordRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	records := make([]domain.Record, 0, len(reqs))
	for _, rec := range reqs {
		occurredAt := rec.OccurredAt
		if occurredAt.IsZero() {
			occurredAt = time.Now().UTC()
		}
		records = append(records, domain.Record{
			Channel:     rec.Channel,
			Spend:       rec.Spend,
			Revenue:     rec.Revenue,
			Clicks:      rec.Clicks,
			Conversions: rec.Conversions,
			Impressions: rec.Impressions,
			OccurredAt:  occurredAt,
		})
	}
	if err := h.svc.UploadRecords(r.Context(), records); err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, uploadResponse{Stored: len(records)})
}

// handleImportRecords ingests campaign records from a CSV request body
// with the columns channel,spend,revenue,clicks,conversions,impressions.
// Unparseable lines are skipped and echoed back as warnings; records
// that parse but violate input constraints reject the batch with 400.
func (h *Handler) handleImportRecords(w http.ResponseWriter, r *http.Request) {
	records, warnings, err := loader.ReadRecords(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	now := time.Now().UTC()
	for i := range records {
		records[i].OccurredAt = now
	}
	if err = h.svc.UploadRecords(r.Context(), records); err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, uploadResponse{Stored: len(records), Warnings: warnings})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
