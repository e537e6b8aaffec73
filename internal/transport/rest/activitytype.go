package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/internal/service/activitytype"
)

type activityTypeService interface {
	ListActivityTypes(ctx context.Context) ([]domain.ActivityType, error)
	GetActivityType(ctx context.Context, id uuid.UUID) (*domain.ActivityType, error)
	CreateActivityType(ctx context.Context, input activitytype.ActivityTypeInput) (*domain.ActivityType, error)
	UpdateActivityType(ctx context.Context, id uuid.UUID, input activitytype.ActivityTypeInput) (*domain.ActivityType, error)
	DeleteActivityType(ctx context.Context, id uuid.UUID) error
}

// ActivityTypeHandler serves /api/activity-types.
type ActivityTypeHandler struct {
	svc activityTypeService
	errorMapper
}

// NewActivityTypeHandler creates an ActivityTypeHandler.
func NewActivityTypeHandler(svc activityTypeService, logger *slog.Logger) *ActivityTypeHandler {
	return &ActivityTypeHandler{svc: svc, errorMapper: errorMapper{log: logger.With("handler", "activity_type")}}
}

type activityTypeRequest struct {
	Name string `json:"name"`
}

func (h *ActivityTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListActivityTypes(r.Context())
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(types, toActivityTypeResponse))
}

// Get is open to every authenticated role.
func (h *ActivityTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	at, err := h.svc.GetActivityType(r.Context(), id)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityTypeResponse(at))
}

func (h *ActivityTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req activityTypeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badBody(w, err)
		return
	}

	at, err := h.svc.CreateActivityType(r.Context(), activitytype.ActivityTypeInput{Name: req.Name})
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityTypeResponse(at))
}

func (h *ActivityTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	var req activityTypeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badBody(w, err)
		return
	}

	at, err := h.svc.UpdateActivityType(r.Context(), id, activitytype.ActivityTypeInput{Name: req.Name})
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityTypeResponse(at))
}

func (h *ActivityTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	if err := h.svc.DeleteActivityType(r.Context(), id); err != nil {
		h.handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
