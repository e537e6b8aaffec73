// Package client manages billable clients.
package client

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/pkg/ctxutil"
)

type clientRepo interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements client CRUD. All operations require an admin caller;
// updates and deletes are limited to clients the caller owns.
type Service struct {
	log     *slog.Logger
	clients clientRepo
	audit   auditRepo
	tx      txManager
}

// NewService creates a new client service instance.
func NewService(logger *slog.Logger, clients clientRepo, audit auditRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "client"),
		clients: clients,
		audit:   audit,
		tx:      tx,
	}
}

func adminID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
