package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleViewer UserRole = "viewer"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleViewer, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// TargetKind is the wire/storage tag of a time entry's billing target.
type TargetKind string

const (
	TargetKindClient TargetKind = "client"
	TargetKindGroup  TargetKind = "group"
)

func (k TargetKind) String() string { return string(k) }

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetKindClient, TargetKindGroup:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeClient       EntityType = "CLIENT"
	EntityTypeClientGroup  EntityType = "CLIENT_GROUP"
	EntityTypeActivityType EntityType = "ACTIVITY_TYPE"
	EntityTypeTimeEntry    EntityType = "TIME_ENTRY"
	EntityTypeUser         EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeClient, EntityTypeClientGroup, EntityTypeActivityType,
		EntityTypeTimeEntry, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
