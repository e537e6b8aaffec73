package clientgroup

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// ListGroups returns every group with its members resolved.
func (s *Service) ListGroups(ctx context.Context) ([]domain.ClientGroup, error) {
	if _, err := adminID(ctx); err != nil {
		return nil, err
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list client groups: %w", err)
	}
	return groups, nil
}

// CreateGroup creates a group owned by the caller. Every member must be an
// existing client.
func (s *Service) CreateGroup(ctx context.Context, input GroupInput) (*domain.ClientGroup, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	g := &domain.ClientGroup{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		ClientIDs: input.memberIDs(),
		OwnerID:   userID,
	}

	var created *domain.ClientGroup
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkMembers(txCtx, g.ClientIDs); err != nil {
			return err
		}

		if _, createErr := s.groups.Create(txCtx, g); createErr != nil {
			return fmt.Errorf("create client group: %w", createErr)
		}

		var getErr error
		created, getErr = s.groups.GetByID(txCtx, g.ID)
		if getErr != nil {
			return fmt.Errorf("get client group: %w", getErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeClientGroup,
			EntityID:   &g.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":      map[string]any{"new": g.Name},
				"clientIds": map[string]any{"new": g.ClientIDs},
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

	s.log.InfoContext(ctx, "client group created",
		slog.String("user_id", userID.String()),
		slog.String("group_id", g.ID.String()),
		slog.Int("members", len(g.ClientIDs)),
	)

	return created, nil
}

// UpdateGroup renames a group owned by the caller and replaces its members.
func (s *Service) UpdateGroup(ctx context.Context, input UpdateGroupInput) (*domain.ClientGroup, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	next := &domain.ClientGroup{
		ID:        input.ID,
		Name:      strings.TrimSpace(input.Name),
		ClientIDs: input.memberIDs(),
		OwnerID:   userID,
	}

	var updated *domain.ClientGroup
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.groups.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get client group: %w", getErr)
		}
		if old.OwnerID != userID {
			return fmt.Errorf("client_group %s: %w", input.ID, domain.ErrNotFound)
		}

		if err := s.checkMembers(txCtx, next.ClientIDs); err != nil {
			return err
		}

		if _, updateErr := s.groups.Update(txCtx, next); updateErr != nil {
			return fmt.Errorf("update client group: %w", updateErr)
		}

		updated, getErr = s.groups.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get client group: %w", getErr)
		}

		changes := make(map[string]any)
		if old.Name != updated.Name {
			changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
		}
		if !slices.Equal(old.ClientIDs, next.ClientIDs) {
			changes["clientIds"] = map[string]any{"old": old.ClientIDs, "new": next.ClientIDs}
		}
		if len(changes) == 0 {
			return nil
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeClientGroup,
			EntityID:   &input.ID,
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

	s.log.InfoContext(ctx, "client group updated",
		slog.String("user_id", userID.String()),
		slog.String("group_id", input.ID.String()),
		slog.Int("members", len(next.ClientIDs)),
	)

	return updated, nil
}

// DeleteGroup deletes a group owned by the caller. Time entries that
// target it stay and are left out of reports.
func (s *Service) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	userID, err := adminID(ctx)
	if err != nil {
		return err
	}

	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get client group: %w", err)
	}
	if g.OwnerID != userID {
		return fmt.Errorf("client_group %s: %w", id, domain.ErrNotFound)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.groups.Delete(txCtx, id, userID); deleteErr != nil {
			return fmt.Errorf("delete client group: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeClientGroup,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": g.Name},
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

	s.log.InfoContext(ctx, "client group deleted",
		slog.String("user_id", userID.String()),
		slog.String("group_id", id.String()),
	)

	return nil
}

// checkMembers fails with a validation error naming the first unknown id.
func (s *Service) checkMembers(ctx context.Context, ids []uuid.UUID) error {
	found, err := s.clients.ListByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load member clients: %w", err)
	}
	if len(found) == len(ids) {
		return nil
	}

	known := make(map[uuid.UUID]struct{}, len(found))
	for _, c := range found {
		known[c.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return domain.NewValidationError("clientIds", fmt.Sprintf("client %s not found", id))
		}
	}
	return nil
}
