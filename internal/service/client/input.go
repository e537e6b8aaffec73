package client

import (
	"math"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// ClientInput holds the writable fields of a client.
type ClientInput struct {
	Name       string
	TaxID      *string
	Email      *string
	HourlyRate *float64
}

// UpdateClientInput replaces every writable field of an existing client.
type UpdateClientInput struct {
	ID uuid.UUID
	ClientInput
}

// Validate validates the client fields.
func (i ClientInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.TaxID != nil && len(strings.TrimSpace(*i.TaxID)) > 32 {
		errs = append(errs, domain.FieldError{Field: "cnpj", Message: "too long"})
	}

	if email := normalizeEmail(i.Email); email != nil {
		if _, err := mail.ParseAddress(*email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}

	switch {
	case i.HourlyRate == nil:
		errs = append(errs, domain.FieldError{Field: "hourlyRate", Message: "required"})
	case math.IsNaN(*i.HourlyRate) || math.IsInf(*i.HourlyRate, 0):
		errs = append(errs, domain.FieldError{Field: "hourlyRate", Message: "must be a finite number"})
	case *i.HourlyRate < 0:
		errs = append(errs, domain.FieldError{Field: "hourlyRate", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Validate validates the update input.
func (i UpdateClientInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return i.ClientInput.Validate()
}

// apply copies the normalized fields onto c.
func (i ClientInput) apply(c *domain.Client) {
	c.Name = strings.TrimSpace(i.Name)
	c.TaxID = trimOrNil(i.TaxID)
	c.Email = normalizeEmail(i.Email)
	c.HourlyRate = *i.HourlyRate
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func normalizeEmail(s *string) *string {
	t := trimOrNil(s)
	if t == nil {
		return nil
	}
	lower := strings.ToLower(*t)
	return &lower
}
