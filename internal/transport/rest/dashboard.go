package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

type dashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

// DashboardHandler serves GET /api/dashboard.
type DashboardHandler struct {
	svc dashboardService
	errorMapper
}

func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, errorMapper: errorMapper{log: logger.With("handler", "dashboard")}}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(stats))
}
