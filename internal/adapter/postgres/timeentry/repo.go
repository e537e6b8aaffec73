// Package timeentry implements the TimeEntry repository using PostgreSQL.
// Reads resolve the activity type name with a LEFT JOIN; a missing type
// yields an empty name.
package timeentry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timebill-backend/internal/domain"
)

const table = "time_entries"

var columns = []string{
	"te.id", "te.date", "te.hours", "te.description", "te.activity_type_id",
	"COALESCE(at.name, '') AS activity_type_name",
	"te.target_kind", "te.target_id", "te.owner_id", "te.created_at", "te.updated_at",
}

type row struct {
	ID               uuid.UUID `db:"id"`
	Date             time.Time `db:"date"`
	Hours            float64   `db:"hours"`
	Description      string    `db:"description"`
	ActivityTypeID   uuid.UUID `db:"activity_type_id"`
	ActivityTypeName string    `db:"activity_type_name"`
	TargetKind       string    `db:"target_kind"`
	TargetID         uuid.UUID `db:"target_id"`
	OwnerID          uuid.UUID `db:"owner_id"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r row) toDomain() (domain.TimeEntry, error) {
	target, err := domain.NewTarget(domain.TargetKind(r.TargetKind), r.TargetID)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("time_entry %s: %w", r.ID, err)
	}

	return domain.TimeEntry{
		ID:               r.ID,
		Date:             domain.TruncateDay(r.Date),
		Hours:            r.Hours,
		Description:      r.Description,
		ActivityTypeID:   r.ActivityTypeID,
		ActivityTypeName: r.ActivityTypeName,
		Target:           target,
		OwnerID:          r.OwnerID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}, nil
}

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new time entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectEntries() sq.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		From(table + " te").
		LeftJoin("activity_types at ON at.id = te.activity_type_id")
}

// ListByRange returns entries dated within rng (both ends inclusive) in
// date, created_at, id order. The order is stable so that report sums are
// reproducible.
func (r *Repo) ListByRange(ctx context.Context, rng domain.DateRange) ([]domain.TimeEntry, error) {
	return r.selectMany(ctx, selectEntries().
		Where(sq.GtOrEq{"te.date": rng.Start}).
		Where(sq.LtOrEq{"te.date": rng.End}).
		OrderBy("te.date ASC", "te.created_at ASC", "te.id ASC"))
}

// ListAll returns every entry in the same stable order as ListByRange.
func (r *Repo) ListAll(ctx context.Context) ([]domain.TimeEntry, error) {
	return r.selectMany(ctx, selectEntries().
		OrderBy("te.date ASC", "te.created_at ASC", "te.id ASC"))
}

// List returns every entry newest first.
func (r *Repo) List(ctx context.Context) ([]domain.TimeEntry, error) {
	return r.selectMany(ctx, selectEntries().
		OrderBy("te.date DESC", "te.created_at DESC", "te.id DESC"))
}

// GetByID returns a single entry with its activity name resolved.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	sql, args, err := selectEntries().Where(sq.Eq{"te.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get time_entry query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "time_entry", id)
	}

	e, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new entry and reads it back.
func (r *Repo) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "date", "hours", "description", "activity_type_id", "target_kind", "target_id", "owner_id").
		Values(e.ID, e.Date, e.Hours, e.Description, e.ActivityTypeID,
			string(e.Target.Kind()), e.Target.RefID(), e.OwnerID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create time_entry query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "time_entry", e.ID)
	}
	return r.GetByID(ctx, e.ID)
}

// Update overwrites an entry owned by e.OwnerID and reads it back.
// An entry owned by someone else is reported as domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("date", e.Date).
		Set("hours", e.Hours).
		Set("description", e.Description).
		Set("activity_type_id", e.ActivityTypeID).
		Set("target_kind", string(e.Target.Kind())).
		Set("target_id", e.Target.RefID()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": e.ID, "owner_id": e.OwnerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update time_entry query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", e.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("time_entry %s: %w", e.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, e.ID)
}

// Delete removes an entry owned by ownerID.
func (r *Repo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete time_entry query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "time_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("time_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) selectMany(ctx context.Context, query sq.SelectBuilder) ([]domain.TimeEntry, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list time_entries query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list time_entries: %w", err)
	}

	entries := make([]domain.TimeEntry, 0, len(rows))
	for _, rw := range rows {
		e, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
