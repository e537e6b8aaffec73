package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/internal/service/clientgroup"
)

type groupService interface {
	ListGroups(ctx context.Context) ([]domain.ClientGroup, error)
	CreateGroup(ctx context.Context, input clientgroup.GroupInput) (*domain.ClientGroup, error)
	UpdateGroup(ctx context.Context, input clientgroup.UpdateGroupInput) (*domain.ClientGroup, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}

// GroupHandler serves /api/client-groups.
type GroupHandler struct {
	svc groupService
	errorMapper
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc groupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, errorMapper: errorMapper{log: logger.With("handler", "client_group")}}
}

type groupRequest struct {
	Name      string      `json:"name"`
	ClientIDs []uuid.UUID `json:"clientIds"`
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListGroups(r.Context())
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(groups, toGroupResponse))
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badBody(w, err)
		return
	}

	g, err := h.svc.CreateGroup(r.Context(), clientgroup.GroupInput{Name: req.Name, ClientIDs: req.ClientIDs})
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupResponse(g))
}

func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	var req groupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badBody(w, err)
		return
	}

	g, err := h.svc.UpdateGroup(r.Context(), clientgroup.UpdateGroupInput{
		ID:         id,
		GroupInput: clientgroup.GroupInput{Name: req.Name, ClientIDs: req.ClientIDs},
	})
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(g))
}

func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	if err := h.svc.DeleteGroup(r.Context(), id); err != nil {
		h.handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
