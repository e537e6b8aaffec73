// Package clientgroup implements the ClientGroup repository using PostgreSQL.
// Membership lives in client_group_members and is returned in insertion order.
package clientgroup

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
	groupsTable  = "client_groups"
	membersTable = "client_group_members"
)

var groupColumns = []string{"id", "name", "owner_id", "created_at", "updated_at"}

var memberColumns = []string{
	"m.group_id", "c.id", "c.name", "c.tax_id", "c.email", "c.hourly_rate",
	"c.owner_id", "c.created_at", "c.updated_at",
}

type groupRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	OwnerID   uuid.UUID `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type memberRow struct {
	GroupID    uuid.UUID `db:"group_id"`
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	TaxID      *string   `db:"tax_id"`
	Email      *string   `db:"email"`
	HourlyRate float64   `db:"hourly_rate"`
	OwnerID    uuid.UUID `db:"owner_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r groupRow) toDomain() domain.ClientGroup {
	return domain.ClientGroup{
		ID:        r.ID,
		Name:      r.Name,
		ClientIDs: []uuid.UUID{},
		Members:   []domain.Client{},
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m memberRow) toClient() domain.Client {
	return domain.Client{
		ID:         m.ID,
		Name:       m.Name,
		TaxID:      m.TaxID,
		Email:      m.Email,
		HourlyRate: m.HourlyRate,
		OwnerID:    m.OwnerID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// Repo provides client group persistence backed by PostgreSQL.
// Create and Update touch two tables; callers run them inside a transaction.
type Repo struct {
	db postgres.Querier
}

// New creates a new client group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns every group ordered by name with members resolved.
func (r *Repo) List(ctx context.Context) ([]domain.ClientGroup, error) {
	sql, args, err := postgres.Builder().
		Select(groupColumns...).
		From(groupsTable).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list client_groups query: %w", err)
	}

	var rows []groupRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list client_groups: %w", err)
	}

	groups := make([]domain.ClientGroup, len(rows))
	ids := make([]uuid.UUID, len(rows))
	for i, rw := range rows {
		groups[i] = rw.toDomain()
		ids[i] = rw.ID
	}

	if err := r.attachMembers(ctx, groups, ids); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetByID returns a group with members resolved.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ClientGroup, error) {
	sql, args, err := postgres.Builder().
		Select(groupColumns...).
		From(groupsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get client_group query: %w", err)
	}

	var rw groupRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "client_group", id)
	}

	groups := []domain.ClientGroup{rw.toDomain()}
	if err := r.attachMembers(ctx, groups, []uuid.UUID{id}); err != nil {
		return nil, err
	}
	return &groups[0], nil
}

// Create inserts the group row and its memberships. Members are not resolved
// on the returned value.
func (r *Repo) Create(ctx context.Context, g *domain.ClientGroup) (*domain.ClientGroup, error) {
	sql, args, err := postgres.Builder().
		Insert(groupsTable).
		Columns("id", "name", "owner_id").
		Values(g.ID, g.Name, g.OwnerID).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create client_group query: %w", err)
	}

	var rw groupRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "client_group", g.ID)
	}

	if err := r.insertMembers(ctx, g.ID, g.ClientIDs); err != nil {
		return nil, err
	}

	out := rw.toDomain()
	out.ClientIDs = append(out.ClientIDs, g.ClientIDs...)
	return &out, nil
}

// Update renames a group owned by g.OwnerID and replaces its membership.
// A group owned by someone else is reported as domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, g *domain.ClientGroup) (*domain.ClientGroup, error) {
	sql, args, err := postgres.Builder().
		Update(groupsTable).
		Set("name", g.Name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": g.ID, "owner_id": g.OwnerID}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update client_group query: %w", err)
	}

	var rw groupRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "client_group", g.ID)
	}

	delSQL, delArgs, err := postgres.Builder().
		Delete(membersTable).
		Where(sq.Eq{"group_id": g.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build clear members query: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, delSQL, delArgs...); err != nil {
		return nil, postgres.MapError(err, "client_group", g.ID)
	}

	if err := r.insertMembers(ctx, g.ID, g.ClientIDs); err != nil {
		return nil, err
	}

	out := rw.toDomain()
	out.ClientIDs = append(out.ClientIDs, g.ClientIDs...)
	return &out, nil
}

// Delete removes a group owned by ownerID. Memberships cascade.
func (r *Repo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(groupsTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete client_group query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "client_group", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client_group %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) insertMembers(ctx context.Context, groupID uuid.UUID, clientIDs []uuid.UUID) error {
	if len(clientIDs) == 0 {
		return nil
	}

	insert := postgres.Builder().
		Insert(membersTable).
		Columns("group_id", "client_id", "position")
	for i, clientID := range clientIDs {
		insert = insert.Values(groupID, clientID, i)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert members query: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "client_group", groupID)
	}
	return nil
}

// attachMembers fills ClientIDs and Members of groups, whose ids are given
// in the same order.
func (r *Repo) attachMembers(ctx context.Context, groups []domain.ClientGroup, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := postgres.Builder().
		Select(memberColumns...).
		From(membersTable + " m").
		Join("clients c ON c.id = m.client_id").
		Where(sq.Expr("m.group_id = ANY(?)", ids)).
		OrderBy("m.group_id", "m.position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build list members query: %w", err)
	}

	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return fmt.Errorf("list client_group members: %w", err)
	}

	index := make(map[uuid.UUID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	for _, m := range rows {
		i, ok := index[m.GroupID]
		if !ok {
			continue
		}
		groups[i].ClientIDs = append(groups[i].ClientIDs, m.ID)
		groups[i].Members = append(groups[i].Members, m.toClient())
	}
	return nil
}
