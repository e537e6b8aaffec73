package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// ListClients returns every client sorted by name.
func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	if _, err := adminID(ctx); err != nil {
		return nil, err
	}

	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// CreateClient creates a client owned by the caller.
func (s *Service) CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Client{ID: uuid.New(), OwnerID: userID}
	input.apply(c)

	var created *domain.Client
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.clients.Create(txCtx, c)
		if createErr != nil {
			return fmt.Errorf("create client: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeClient,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":       map[string]any{"new": created.Name},
				"hourlyRate": map[string]any{"new": created.HourlyRate},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client created",
		slog.String("user_id", userID.String()),
		slog.String("client_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// UpdateClient replaces the fields of a client owned by the caller.
// A client owned by someone else is reported as not found.
func (s *Service) UpdateClient(ctx context.Context, input UpdateClientInput) (*domain.Client, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Client
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.clients.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get client: %w", getErr)
		}
		if old.OwnerID != userID {
			return fmt.Errorf("client %s: %w", input.ID, domain.ErrNotFound)
		}

		next := *old
		input.apply(&next)

		var updateErr error
		updated, updateErr = s.clients.Update(txCtx, &next)
		if updateErr != nil {
			return fmt.Errorf("update client: %w", updateErr)
		}

		changes := buildClientChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeClient,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client updated",
		slog.String("user_id", userID.String()),
		slog.String("client_id", input.ID.String()),
	)

	return updated, nil
}

// DeleteClient deletes a client owned by the caller. Group memberships
// of the client disappear with it; its time entries stay and are left
// out of reports.
func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) error {
	userID, err := adminID(ctx)
	if err != nil {
		return err
	}

	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get client: %w", err)
	}
	if c.OwnerID != userID {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.clients.Delete(txCtx, id, userID); deleteErr != nil {
			return fmt.Errorf("delete client: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeClient,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": c.Name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "client deleted",
		slog.String("user_id", userID.String()),
		slog.String("client_id", id.String()),
		slog.String("name", c.Name),
	)

	return nil
}

func buildClientChanges(old, updated *domain.Client) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if deref(old.TaxID) != deref(updated.TaxID) {
		changes["cnpj"] = map[string]any{"old": old.TaxID, "new": updated.TaxID}
	}
	if deref(old.Email) != deref(updated.Email) {
		changes["email"] = map[string]any{"old": old.Email, "new": updated.Email}
	}
	if old.HourlyRate != updated.HourlyRate {
		changes["hourlyRate"] = map[string]any{"old": old.HourlyRate, "new": updated.HourlyRate}
	}
	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
