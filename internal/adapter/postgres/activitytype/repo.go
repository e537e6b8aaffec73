// Package activitytype implements the ActivityType repository using PostgreSQL.
package activitytype

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

const table = "activity_types"

var columns = []string{"id", "name", "owner_id", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	OwnerID   uuid.UUID `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.ActivityType {
	return &domain.ActivityType{
		ID:        r.ID,
		Name:      r.Name,
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides activity type persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity type repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByOwner returns the activity types created by ownerID ordered by name.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ActivityType, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activity_types query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list activity_types: %w", err)
	}

	out := make([]domain.ActivityType, len(rows))
	for i, rw := range rows {
		out[i] = *rw.toDomain()
	}
	return out, nil
}

// GetByID returns an activity type regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityType, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get activity_type query: %w", err)
	}
	return r.getOne(ctx, sql, args, id)
}

// Create inserts a new activity type.
func (r *Repo) Create(ctx context.Context, at *domain.ActivityType) (*domain.ActivityType, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "name", "owner_id").
		Values(at.ID, at.Name, at.OwnerID).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create activity_type query: %w", err)
	}
	return r.getOne(ctx, sql, args, at.ID)
}

// Update renames an activity type owned by at.OwnerID.
func (r *Repo) Update(ctx context.Context, at *domain.ActivityType) (*domain.ActivityType, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", at.Name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": at.ID, "owner_id": at.OwnerID}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update activity_type query: %w", err)
	}
	return r.getOne(ctx, sql, args, at.ID)
}

// Delete removes an activity type owned by ownerID. Time entries that
// reference it keep their id and read back with an empty activity name.
func (r *Repo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete activity_type query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "activity_type", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity_type %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the total number of activity types.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count activity_types: %w", err)
	}
	return n, nil
}

func (r *Repo) getOne(ctx context.Context, sql string, args []any, id uuid.UUID) (*domain.ActivityType, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "activity_type", id)
	}
	return rw.toDomain(), nil
}
