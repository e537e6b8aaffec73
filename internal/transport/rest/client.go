package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/internal/service/client"
)

type clientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, input client.ClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, input client.UpdateClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

// ClientHandler serves /api/clients.
type ClientHandler struct {
	svc clientService
	errorMapper
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(svc clientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, errorMapper: errorMapper{log: logger.With("handler", "client")}}
}

type clientRequest struct {
	Name       string   `json:"name"`
	CNPJ       *string  `json:"cnpj"`
	Email      *string  `json:"email"`
	HourlyRate *float64 `json:"hourlyRate"`
}

func (req clientRequest) input() client.ClientInput {
	return client.ClientInput{Name: req.Name, TaxID: req.CNPJ, Email: req.Email, HourlyRate: req.HourlyRate}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context())
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(clients, toClientResponse))
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badBody(w, err)
		return
	}

	c, err := h.svc.CreateClient(r.Context(), req.input())
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClientResponse(c))
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	var req clientRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badBody(w, err)
		return
	}

	c, err := h.svc.UpdateClient(r.Context(), client.UpdateClientInput{ID: id, ClientInput: req.input()})
	if err != nil {
		h.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponse(c))
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	if err := h.svc.DeleteClient(r.Context(), id); err != nil {
		h.handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
