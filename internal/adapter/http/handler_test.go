package httpadapter

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adroi/internal/adapter/usecase"
	"adroi/internal/core/domain"
	"adroi/internal/core/port/mocks"
)

func testRecords() []domain.Record {
	return []domain.Record{
		{Channel: "Email", Spend: 1000, Revenue: 3000, Clicks: 500, Conversions: 50},
		{Channel: "Social", Spend: 2000, Revenue: 1800, Clicks: 1000, Conversions: 40},
	}
}

func newTestHandler(t *testing.T) (*Handler, *mocks.MockRecordRepository) {
	repo := mocks.NewMockRecordRepository(t)
	svc := usecase.NewAnalysisService(repo)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger), repo
}

func TestHandleRunAnalysis(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		ListRecords(mock.Anything, domain.RecordFilter{}).
		Return(testRecords(), nil)
	repo.EXPECT().
		SavePlan(mock.Anything, mock.AnythingOfType("string"), float64(10000), mock.AnythingOfType("[]domain.PlanEntry")).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", strings.NewReader(`{"budget":10000}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"analysis_id"`)
	require.Contains(t, rec.Body.String(), `"Email"`)
}

func TestHandleRunAnalysisDegenerate(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		ListRecords(mock.Anything, domain.RecordFilter{}).
		Return([]domain.Record{
			{Channel: "A", Spend: 100, Revenue: 150},
			{Channel: "B", Spend: 100, Revenue: 50},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", strings.NewReader(`{"budget":1000}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleRunAnalysisInvalidBudget(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		ListRecords(mock.Anything, domain.RecordFilter{}).
		Return(testRecords(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", strings.NewReader(`{"budget":0}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUploadRecordsRejectsNegative(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `[{"channel":"Email","spend":-5,"revenue":10}]`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUploadRecords(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		InsertRecords(mock.Anything, mock.AnythingOfType("[]domain.Record")).
		Return(nil)

	body := `[{"channel":"Email","spend":1000,"revenue":3000,"clicks":500,"conversions":50}]`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"stored":1`)
}

func TestHandleImportRecordsCSV(t *testing.T) {
	h, repo := newTestHandler(t)

	var stored []domain.Record
	repo.EXPECT().
		InsertRecords(mock.Anything, mock.AnythingOfType("[]domain.Record")).
		Run(func(ctx context.Context, records []domain.Record) {
			stored = records
		}).
		Return(nil)

	body := "channel,spend,revenue,clicks,conversions,impressions\n" +
		"Email,1000,3000,500,50,20000\n" +
		"Search,oops,1,1,1,1\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/import", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"warnings"`)
	require.Len(t, stored, 1)
	require.Equal(t, "Email", stored[0].Channel)
}

func TestHandleMetrics(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		ListRecords(mock.Anything, domain.RecordFilter{Channel: "Email"}).
		Return(testRecords()[:1], nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics?channel=Email", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"roi_percent":200`)
}

func TestHandleExportPlanUnknownID(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetPlan(mock.Anything, "nope").
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/nope/export", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleExportPlan(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetPlan(mock.Anything, "run-1").
		Return([]domain.PlanEntry{
			{Channel: "Email", CurrentSpend: 1000, OptimalAllocation: 10526.32, CurrentRevenue: 3000, ExpectedRevenue: 31578.95, RevenueIncrease: 28578.95},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/run-1/export", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "Email,1000.00,10526.32")
}

func TestHandleReport(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		ListRecords(mock.Anything, domain.RecordFilter{}).
		Return(testRecords(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report?budget=10000", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "MARKETING ROI ANALYSIS REPORT")
}
