// Package clientgroup manages named sets of clients that share
// group-targeted hours.
package clientgroup

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/pkg/ctxutil"
)

type groupRepo interface {
	List(ctx context.Context) ([]domain.ClientGroup, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ClientGroup, error)
	Create(ctx context.Context, g *domain.ClientGroup) (*domain.ClientGroup, error)
	Update(ctx context.Context, g *domain.ClientGroup) (*domain.ClientGroup, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type clientRepo interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Client, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements client group CRUD for admins.
type Service struct {
	log     *slog.Logger
	groups  groupRepo
	clients clientRepo
	audit   auditRepo
	tx      txManager
}

// NewService creates a new client group service instance.
func NewService(logger *slog.Logger, groups groupRepo, clients clientRepo, audit auditRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "clientgroup"),
		groups:  groups,
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
