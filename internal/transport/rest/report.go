package rest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/internal/service/report"
)

type reportService interface {
	Generate(ctx context.Context, input report.GenerateInput) (*domain.Report, error)
}

// ReportHandler serves billing reports as JSON and CSV.
type ReportHandler struct {
	svc reportService
	errorMapper
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, errorMapper: errorMapper{log: logger.With("handler", "report")}}
}

func reportInput(r *http.Request) report.GenerateInput {
	q := r.URL.Query()
	return report.GenerateInput{StartDate: q.Get("startDate"), EndDate: q.Get("endDate")}
}

// Get handles GET /api/reports?startDate=&endDate=.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Generate(r.Context(), reportInput(r))
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// Export handles GET /api/reports/export. The CSV is rendered into a
// buffer first so a failure can still produce a JSON error.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Generate(r.Context(), reportInput(r))
	if err != nil {
		h.handle(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, rep); err != nil {
		h.handle(w, r, fmt.Errorf("render csv: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ExportFilename(rep.Period)))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}
