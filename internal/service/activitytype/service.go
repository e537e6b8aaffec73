// Package activitytype manages the categories time entries are filed under.
package activitytype

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/pkg/ctxutil"
)

type activityTypeRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ActivityType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityType, error)
	Create(ctx context.Context, at *domain.ActivityType) (*domain.ActivityType, error)
	Update(ctx context.Context, at *domain.ActivityType) (*domain.ActivityType, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements activity type operations.
type Service struct {
	log   *slog.Logger
	types activityTypeRepo
	audit auditRepo
	tx    txManager
}

// NewService creates a new activity type service instance.
func NewService(logger *slog.Logger, types activityTypeRepo, audit auditRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "activitytype"),
		types: types,
		audit: audit,
		tx:    tx,
	}
}

// ActivityTypeInput holds the writable fields of an activity type.
type ActivityTypeInput struct {
	Name string
}

// Validate validates the input.
func (i ActivityTypeInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		return domain.NewValidationError("name", "required")
	case len(name) > 255:
		return domain.NewValidationError("name", "too long")
	}
	return nil
}

// ListActivityTypes returns the caller's activity types sorted by name.
func (s *Service) ListActivityTypes(ctx context.Context) ([]domain.ActivityType, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.types.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activity types: %w", err)
	}
	return types, nil
}

// GetActivityType returns one activity type to any authenticated caller.
func (s *Service) GetActivityType(ctx context.Context, id uuid.UUID) (*domain.ActivityType, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	at, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity type: %w", err)
	}
	return at, nil
}

// CreateActivityType creates an activity type owned by the caller.
func (s *Service) CreateActivityType(ctx context.Context, input ActivityTypeInput) (*domain.ActivityType, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	at := &domain.ActivityType{ID: uuid.New(), Name: strings.TrimSpace(input.Name), OwnerID: userID}

	var created *domain.ActivityType
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.types.Create(txCtx, at)
		if createErr != nil {
			return fmt.Errorf("create activity type: %w", createErr)
		}
		return s.logAudit(txCtx, userID, at.ID, domain.AuditActionCreate, map[string]any{
			"name": map[string]any{"new": at.Name},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "activity type created",
		slog.String("user_id", userID.String()),
		slog.String("activity_type_id", at.ID.String()),
		slog.String("name", at.Name),
	)
	return created, nil
}

// UpdateActivityType renames an activity type owned by the caller.
func (s *Service) UpdateActivityType(ctx context.Context, id uuid.UUID, input ActivityTypeInput) (*domain.ActivityType, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.ActivityType
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.types.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get activity type: %w", getErr)
		}
		if old.OwnerID != userID {
			return fmt.Errorf("activity_type %s: %w", id, domain.ErrNotFound)
		}

		next := *old
		next.Name = strings.TrimSpace(input.Name)

		var updateErr error
		updated, updateErr = s.types.Update(txCtx, &next)
		if updateErr != nil {
			return fmt.Errorf("update activity type: %w", updateErr)
		}

		if old.Name == updated.Name {
			return nil
		}
		return s.logAudit(txCtx, userID, id, domain.AuditActionUpdate, map[string]any{
			"name": map[string]any{"old": old.Name, "new": updated.Name},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "activity type updated",
		slog.String("user_id", userID.String()),
		slog.String("activity_type_id", id.String()),
	)
	return updated, nil
}

// DeleteActivityType deletes an activity type owned by the caller. Time
// entries filed under it keep their hours and show an empty activity name.
func (s *Service) DeleteActivityType(ctx context.Context, id uuid.UUID) error {
	userID, err := adminID(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.types.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get activity type: %w", getErr)
		}
		if deleteErr := s.types.Delete(txCtx, id, userID); deleteErr != nil {
			return fmt.Errorf("delete activity type: %w", deleteErr)
		}
		return s.logAudit(txCtx, userID, id, domain.AuditActionDelete, map[string]any{
			"name": map[string]any{"old": old.Name},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "activity type deleted",
		slog.String("user_id", userID.String()),
		slog.String("activity_type_id", id.String()),
	)
	return nil
}

func (s *Service) logAudit(ctx context.Context, userID, id uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeActivityType,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
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
