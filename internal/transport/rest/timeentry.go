package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/internal/service/timeentry"
)

type timeEntryService interface {
	ListEntries(ctx context.Context) ([]domain.TimeEntry, error)
	CreateEntry(ctx context.Context, input timeentry.EntryInput) (*domain.TimeEntry, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, input timeentry.EntryInput) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// TimeEntryHandler serves /api/time-entries.
type TimeEntryHandler struct {
	svc timeEntryService
	errorMapper
}

// NewTimeEntryHandler creates a TimeEntryHandler.
func NewTimeEntryHandler(svc timeEntryService, logger *slog.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{svc: svc, errorMapper: errorMapper{log: logger.With("handler", "time_entry")}}
}

type timeEntryRequest struct {
	Date           string    `json:"date"`
	Hours          float64   `json:"hours"`
	Description    string    `json:"description"`
	ActivityTypeID uuid.UUID `json:"activityTypeId"`
	Target         targetDTO `json:"target"`
}

func (req timeEntryRequest) input() timeentry.EntryInput {
	return timeentry.EntryInput{
		Date:           req.Date,
		Hours:          req.Hours,
		Description:    req.Description,
		ActivityTypeID: req.ActivityTypeID,
		TargetKind:     req.Target.Type,
		TargetID:       req.Target.ID,
	}
}

// List returns entries newest first with the activity type name resolved.
func (h *TimeEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context())
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(entries, toTimeEntryResponse))
}

func (h *TimeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req timeEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badBody(w, err)
		return
	}

	e, err := h.svc.CreateEntry(r.Context(), req.input())
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTimeEntryResponse(e))
}

func (h *TimeEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	var req timeEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badBody(w, err)
		return
	}

	e, err := h.svc.UpdateEntry(r.Context(), id, req.input())
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimeEntryResponse(e))
}

func (h *TimeEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		h.handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
