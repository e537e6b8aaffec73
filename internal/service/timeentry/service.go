// Package timeentry records hours worked against clients or client groups.
package timeentry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/pkg/ctxutil"
)

type entryRepo interface {
	List(ctx context.Context) ([]domain.TimeEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type activityTypeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityType, error)
}

type clientRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

type groupRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ClientGroup, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements time entry CRUD for admins.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	types   activityTypeRepo
	clients clientRepo
	groups  groupRepo
	audit   auditRepo
	tx      txManager
}

// NewService creates a new time entry service instance.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	types activityTypeRepo,
	clients clientRepo,
	groups groupRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "timeentry"),
		entries: entries,
		types:   types,
		clients: clients,
		groups:  groups,
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
