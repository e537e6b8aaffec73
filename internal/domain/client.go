package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a billable customer with a flat hourly rate.
type Client struct {
	ID         uuid.UUID
	Name       string
	TaxID      *string // CNPJ, unique when present
	Email      *string
	HourlyRate float64
	OwnerID    uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ClientGroup is a named set of clients that share group-targeted hours.
// Members is populated on reads; ClientIDs is the authoritative membership.
type ClientGroup struct {
	ID        uuid.UUID
	Name      string
	ClientIDs []uuid.UUID
	Members   []Client
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActivityType categorizes time entries. It has no effect on billing.
type ActivityType struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// DashboardStats is the admin landing-page overview.
type DashboardStats struct {
	Clients       int
	Groups        int
	ActivityTypes int
	TimeEntries   int
	TotalHours    float64
	TotalValue    float64
}
