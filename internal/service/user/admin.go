package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/pkg/ctxutil"
)

// ListUsers returns every account sorted by name (admin only).
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if _, err := adminID(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// CreateUser creates an account (admin only). The role defaults to viewer.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	callerID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}
	return s.CreateAccount(ctx, callerID, input)
}

// CreateAccount creates an account without a caller check. It backs the
// admin CLI; actorID may be uuid.Nil.
func (s *Service) CreateAccount(ctx context.Context, actorID uuid.UUID, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        NormalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         input.role(),
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.users.Create(txCtx, u)
		if createErr != nil {
			return fmt.Errorf("create user: %w", createErr)
		}
		return s.logAudit(txCtx, actorID, u.ID, domain.AuditActionCreate, map[string]any{
			"email": map[string]any{"new": u.Email},
			"role":  map[string]any{"new": u.Role.String()},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("actor_id", actorID.String()),
		slog.String("target_user_id", u.ID.String()),
		slog.String("role", u.Role.String()),
	)

	return created, nil
}

// UpdateUser applies a partial update (admin only). A new password is
// re-hashed. Admins cannot demote themselves and the last admin cannot
// be demoted.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	callerID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.UserUpdateParams{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		params.Email = &email
	}
	if input.Role != nil {
		role := domain.UserRole(*input.Role)
		params.Role = &role
	}
	if input.Password != nil {
		hash, hashErr := s.hasher.Hash(*input.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("hash password: %w", hashErr)
		}
		params.PasswordHash = &hash
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.users.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get user: %w", getErr)
		}

		if params.Role != nil && old.Role.IsAdmin() && !params.Role.IsAdmin() {
			if old.ID == callerID {
				return domain.NewValidationError("role", "cannot demote yourself")
			}
			if err := s.ensureAnotherAdmin(txCtx); err != nil {
				return err
			}
		}

		var updateErr error
		updated, updateErr = s.users.Update(txCtx, input.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update user: %w", updateErr)
		}

		changes := buildUserChanges(old, updated, params.PasswordHash != nil)
		if len(changes) == 0 {
			return nil
		}
		return s.logAudit(txCtx, callerID, input.ID, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("actor_id", callerID.String()),
		slog.String("target_user_id", input.ID.String()),
	)

	return updated, nil
}

// DeleteUser removes an account (admin only). Admins cannot delete
// themselves and the last admin cannot be deleted.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	callerID, err := adminID(ctx)
	if err != nil {
		return err
	}
	if id == callerID {
		return domain.NewValidationError("id", "cannot delete yourself")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, getErr := s.users.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get user: %w", getErr)
		}
		if target.Role.IsAdmin() {
			if err := s.ensureAnotherAdmin(txCtx); err != nil {
				return err
			}
		}

		if deleteErr := s.users.Delete(txCtx, id); deleteErr != nil {
			return fmt.Errorf("delete user: %w", deleteErr)
		}
		return s.logAudit(txCtx, callerID, id, domain.AuditActionDelete, map[string]any{
			"email": map[string]any{"old": target.Email},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("actor_id", callerID.String()),
		slog.String("target_user_id", id.String()),
	)

	return nil
}

// ensureAnotherAdmin fails unless more than one admin exists. It must run
// inside the caller's transaction: the admin rows stay locked until commit,
// so two admins demoting each other cannot both pass.
func (s *Service) ensureAnotherAdmin(ctx context.Context) error {
	n, err := s.users.LockByRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		return fmt.Errorf("lock admins: %w", err)
	}
	if n <= 1 {
		return fmt.Errorf("last admin account: %w", domain.ErrConflict)
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, actorID, id uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     actorID,
		EntityType: domain.EntityTypeUser,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func buildUserChanges(old, updated *domain.User, passwordChanged bool) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if old.Email != updated.Email {
		changes["email"] = map[string]any{"old": old.Email, "new": updated.Email}
	}
	if old.Role != updated.Role {
		changes["role"] = map[string]any{"old": old.Role.String(), "new": updated.Role.String()}
	}
	if passwordChanged {
		changes["password"] = map[string]any{"changed": true}
	}
	return changes
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
