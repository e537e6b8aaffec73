// Package client implements the Client repository using PostgreSQL.
package client

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

const (
	table = "clients"

	// TaxIDConstraint is the partial unique index on clients.tax_id.
	TaxIDConstraint = "ux_clients_tax_id"
)

var columns = []string{"id", "name", "tax_id", "email", "hourly_rate", "owner_id", "created_at", "updated_at"}

type row struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	TaxID      *string   `db:"tax_id"`
	Email      *string   `db:"email"`
	HourlyRate float64   `db:"hourly_rate"`
	OwnerID    uuid.UUID `db:"owner_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Client {
	return domain.Client{
		ID:         r.ID,
		Name:       r.Name,
		TaxID:      r.TaxID,
		Email:      r.Email,
		HourlyRate: r.HourlyRate,
		OwnerID:    r.OwnerID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new client repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns every client ordered by name. Reads are not owner-filtered.
func (r *Repo) List(ctx context.Context) ([]domain.Client, error) {
	return r.selectMany(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("name ASC", "id ASC"))
}

// ListByIDs returns the clients whose ids are in ids. Unknown ids are ignored.
func (r *Repo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Client, error) {
	if len(ids) == 0 {
		return []domain.Client{}, nil
	}
	return r.selectMany(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": ids}))
}

// GetByID returns a client by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get client query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "client", id)
	}
	c := rw.toDomain()
	return &c, nil
}

// Create inserts a new client and returns the persisted record.
func (r *Repo) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "name", "tax_id", "email", "hourly_rate", "owner_id").
		Values(c.ID, c.Name, c.TaxID, c.Email, c.HourlyRate, c.OwnerID).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create client query: %w", err)
	}
	return r.getReturning(ctx, sql, args, c.ID)
}

// Update overwrites the mutable fields of a client owned by c.OwnerID.
// A client owned by someone else is reported as domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", c.Name).
		Set("tax_id", c.TaxID).
		Set("email", c.Email).
		Set("hourly_rate", c.HourlyRate).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": c.ID, "owner_id": c.OwnerID}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update client query: %w", err)
	}
	return r.getReturning(ctx, sql, args, c.ID)
}

// Delete removes a client owned by ownerID. Group memberships cascade.
func (r *Repo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete client query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "client", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) selectMany(ctx context.Context, query sq.SelectBuilder) ([]domain.Client, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clients query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	clients := make([]domain.Client, len(rows))
	for i, rw := range rows {
		clients[i] = rw.toDomain()
	}
	return clients, nil
}

func (r *Repo) getReturning(ctx context.Context, sql string, args []any, id uuid.UUID) (*domain.Client, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "client", id)
	}
	c := rw.toDomain()
	return &c, nil
}
