package timeentry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// ListEntries returns every time entry, newest business date first, with
// activity type names resolved.
func (s *Service) ListEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	if _, err := adminID(ctx); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	return entries, nil
}

// CreateEntry records hours for the caller. The activity type and the
// target must exist at creation time.
func (s *Service) CreateEntry(ctx context.Context, input EntryInput) (*domain.TimeEntry, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := input.Parse()
	if err != nil {
		return nil, err
	}

	e := &domain.TimeEntry{
		ID:             uuid.New(),
		Date:           p.date,
		Hours:          p.hours,
		Description:    p.description,
		ActivityTypeID: p.activityID,
		Target:         p.target,
		OwnerID:        userID,
	}

	var created *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkReferences(txCtx, e); err != nil {
			return err
		}

		var createErr error
		created, createErr = s.entries.Create(txCtx, e)
		if createErr != nil {
			return fmt.Errorf("create time entry: %w", createErr)
		}

		return s.logAudit(txCtx, userID, e.ID, domain.AuditActionCreate, map[string]any{
			"date":   map[string]any{"new": e.Date.Format(domain.DateLayout)},
			"hours":  map[string]any{"new": e.Hours},
			"target": map[string]any{"new": targetString(e.Target)},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "time entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", e.ID.String()),
		slog.String("target", targetString(e.Target)),
		slog.Float64("hours", e.Hours),
	)

	return created, nil
}

// UpdateEntry replaces the fields of an entry owned by the caller.
func (s *Service) UpdateEntry(ctx context.Context, id uuid.UUID, input EntryInput) (*domain.TimeEntry, error) {
	userID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	p, err := input.Parse()
	if err != nil {
		return nil, err
	}

	var updated *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.entries.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get time entry: %w", getErr)
		}
		if old.OwnerID != userID {
			return fmt.Errorf("time_entry %s: %w", id, domain.ErrNotFound)
		}

		next := *old
		next.Date = p.date
		next.Hours = p.hours
		next.Description = p.description
		next.ActivityTypeID = p.activityID
		next.Target = p.target

		if err := s.checkReferences(txCtx, &next); err != nil {
			return err
		}

		var updateErr error
		updated, updateErr = s.entries.Update(txCtx, &next)
		if updateErr != nil {
			return fmt.Errorf("update time entry: %w", updateErr)
		}

		changes := buildEntryChanges(old, &next)
		if len(changes) == 0 {
			return nil
		}
		return s.logAudit(txCtx, userID, id, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "time entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()),
	)

	return updated, nil
}

// DeleteEntry deletes an entry owned by the caller.
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	userID, err := adminID(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.entries.Delete(txCtx, id, userID); deleteErr != nil {
			return fmt.Errorf("delete time entry: %w", deleteErr)
		}
		return s.logAudit(txCtx, userID, id, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "time entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()),
	)

	return nil
}

// checkReferences turns a missing activity type or target into a
// validation error on the offending field.
func (s *Service) checkReferences(ctx context.Context, e *domain.TimeEntry) error {
	if _, err := s.types.GetByID(ctx, e.ActivityTypeID); err != nil {
		return referenceError("activityTypeId", "activity type", err)
	}

	switch t := e.Target.(type) {
	case domain.ClientTarget:
		if _, err := s.clients.GetByID(ctx, t.ClientID); err != nil {
			return referenceError("target.id", "client", err)
		}
	case domain.GroupTarget:
		if _, err := s.groups.GetByID(ctx, t.GroupID); err != nil {
			return referenceError("target.id", "client group", err)
		}
	default:
		return domain.NewValidationError("target.type", "unsupported target")
	}
	return nil
}

func referenceError(field, what string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError(field, what+" not found")
	}
	return fmt.Errorf("get %s: %w", what, err)
}

func (s *Service) logAudit(ctx context.Context, userID, id uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeTimeEntry,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func buildEntryChanges(old, next *domain.TimeEntry) map[string]any {
	changes := make(map[string]any)
	if !old.Date.Equal(next.Date) {
		changes["date"] = map[string]any{
			"old": old.Date.Format(domain.DateLayout),
			"new": next.Date.Format(domain.DateLayout),
		}
	}
	if old.Hours != next.Hours {
		changes["hours"] = map[string]any{"old": old.Hours, "new": next.Hours}
	}
	if old.Description != next.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": next.Description}
	}
	if old.ActivityTypeID != next.ActivityTypeID {
		changes["activityTypeId"] = map[string]any{"old": old.ActivityTypeID, "new": next.ActivityTypeID}
	}
	if targetString(old.Target) != targetString(next.Target) {
		changes["target"] = map[string]any{"old": targetString(old.Target), "new": targetString(next.Target)}
	}
	return changes
}

func targetString(t domain.Target) string {
	if t == nil {
		return ""
	}
	return t.Kind().String() + ":" + t.RefID().String()
}
