// Package user implements administration of user accounts.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LockByRole(ctx context.Context, role domain.UserRole) (int, error)
}

// passwordHasher hashes plain-text passwords for storage.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// auditRepo defines the audit repository interface needed by user service.
type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user management operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	audit  auditRepo
	tx     txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		hasher: hasher,
		audit:  audit,
		tx:     tx,
	}
}
