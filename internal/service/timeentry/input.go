package timeentry

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// EntryInput holds the writable fields of a time entry.
type EntryInput struct {
	Date           string // YYYY-MM-DD
	Hours          float64
	Description    string
	ActivityTypeID uuid.UUID
	TargetKind     string
	TargetID       uuid.UUID
}

// parsed is an EntryInput that passed validation.
type parsed struct {
	date        time.Time
	hours       float64
	description string
	activityID  uuid.UUID
	target      domain.Target
}

// Parse validates the input and converts it to domain values.
func (i EntryInput) Parse() (parsed, error) {
	var errs []domain.FieldError
	var p parsed

	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if d, err := domain.ParseDate(i.Date); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	} else {
		p.date = d
	}

	switch {
	case math.IsNaN(i.Hours) || math.IsInf(i.Hours, 0):
		errs = append(errs, domain.FieldError{Field: "hours", Message: "must be a finite number"})
	case i.Hours < domain.MinEntryHours:
		errs = append(errs, domain.FieldError{Field: "hours", Message: "must be at least 0.1"})
	default:
		p.hours = i.Hours
	}

	p.description = strings.TrimSpace(i.Description)
	if p.description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if len(p.description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.ActivityTypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activityTypeId", Message: "required"})
	}
	p.activityID = i.ActivityTypeID

	kind := domain.TargetKind(i.TargetKind)
	switch {
	case !kind.IsValid():
		errs = append(errs, domain.FieldError{Field: "target.type", Message: "must be 'client' or 'group'"})
	case i.TargetID == uuid.Nil:
		errs = append(errs, domain.FieldError{Field: "target.id", Message: "required"})
	default:
		// kind is valid here, so NewTarget cannot fail.
		p.target, _ = domain.NewTarget(kind, i.TargetID)
	}

	if len(errs) > 0 {
		return parsed{}, &domain.ValidationError{Errors: errs}
	}
	return p, nil
}
