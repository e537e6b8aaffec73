package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role. The password hash is not a
// valid bcrypt hash; use the auth service to create users that log in.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role),
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedClient creates a client with the given rate, owned by ownerID.
func SeedClient(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, rate float64) domain.Client {
	t.Helper()

	c := domain.Client{
		ID:         uuid.New(),
		Name:       "Client " + uniqueSuffix(),
		HourlyRate: rate,
		OwnerID:    ownerID,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO clients (id, name, hourly_rate, owner_id)
		 VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at`,
		c.ID, c.Name, c.HourlyRate, c.OwnerID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedClient: %v", err)
	}
	return c
}

// SeedGroup creates a group whose members are clientIDs, in order.
func SeedGroup(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, clientIDs ...uuid.UUID) domain.ClientGroup {
	t.Helper()
	ctx := context.Background()

	g := domain.ClientGroup{
		ID:        uuid.New(),
		Name:      "Group " + uniqueSuffix(),
		ClientIDs: clientIDs,
		OwnerID:   ownerID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO client_groups (id, name, owner_id) VALUES ($1, $2, $3) RETURNING created_at, updated_at`,
		g.ID, g.Name, g.OwnerID,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}

	for i, clientID := range clientIDs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO client_group_members (group_id, client_id, position) VALUES ($1, $2, $3)`,
			g.ID, clientID, i,
		); err != nil {
			t.Fatalf("testhelper: SeedGroup member: %v", err)
		}
	}
	return g
}

// SeedActivityType creates an activity type with the given name.
func SeedActivityType(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name string) domain.ActivityType {
	t.Helper()

	at := domain.ActivityType{ID: uuid.New(), Name: name, OwnerID: ownerID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO activity_types (id, name, owner_id) VALUES ($1, $2, $3) RETURNING created_at, updated_at`,
		at.ID, at.Name, at.OwnerID,
	).Scan(&at.CreatedAt, &at.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedActivityType: %v", err)
	}
	return at
}

// SeedTimeEntry records hours against target on date (YYYY-MM-DD).
func SeedTimeEntry(t *testing.T, pool *pgxpool.Pool, ownerID, activityTypeID uuid.UUID, target domain.Target, date string, hours float64) domain.TimeEntry {
	t.Helper()

	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		t.Fatalf("testhelper: SeedTimeEntry date: %v", err)
	}

	e := domain.TimeEntry{
		ID:             uuid.New(),
		Date:           d,
		Hours:          hours,
		Description:    "Work " + uniqueSuffix(),
		ActivityTypeID: activityTypeID,
		Target:         target,
		OwnerID:        ownerID,
	}

	err = pool.QueryRow(context.Background(),
		`INSERT INTO time_entries (id, date, hours, description, activity_type_id, target_kind, target_id, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at, updated_at`,
		e.ID, e.Date, e.Hours, e.Description, e.ActivityTypeID, string(target.Kind()), target.RefID(), e.OwnerID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTimeEntry: %v", err)
	}
	return e
}
