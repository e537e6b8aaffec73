package clientgroup

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// MaxMembers bounds the size of one group.
const MaxMembers = 500

// GroupInput holds the writable fields of a group.
type GroupInput struct {
	Name      string
	ClientIDs []uuid.UUID
}

// UpdateGroupInput replaces the name and membership of a group.
type UpdateGroupInput struct {
	ID uuid.UUID
	GroupInput
}

// Validate validates the group fields.
func (i GroupInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	switch {
	case len(i.ClientIDs) == 0:
		errs = append(errs, domain.FieldError{Field: "clientIds", Message: "at least one client is required"})
	case len(i.ClientIDs) > MaxMembers:
		errs = append(errs, domain.FieldError{Field: "clientIds", Message: "too many clients"})
	default:
		for _, id := range i.ClientIDs {
			if id == uuid.Nil {
				errs = append(errs, domain.FieldError{Field: "clientIds", Message: "invalid client id"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Validate validates the update input.
func (i UpdateGroupInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return i.GroupInput.Validate()
}

// memberIDs returns ClientIDs without duplicates, first occurrence first.
func (i GroupInput) memberIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(i.ClientIDs))
	out := make([]uuid.UUID, 0, len(i.ClientIDs))
	for _, id := range i.ClientIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
