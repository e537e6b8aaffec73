package user

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// MinPasswordLength is the shortest password accepted for new credentials.
const MinPasswordLength = 8

// bcrypt ignores input past 72 bytes.
const maxPasswordLength = 72

// CreateUserInput holds parameters for creating an account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string // empty means viewer
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateEmail(errs, i.Email)
	errs = validatePassword(errs, i.Password)
	if i.Role != "" && !domain.UserRole(i.Role).IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be 'viewer' or 'admin'"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateUserInput) role() domain.UserRole {
	if i.Role == "" {
		return domain.UserRoleViewer
	}
	return domain.UserRole(i.Role)
}

// UpdateUserInput holds parameters for a partial account update.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	ID       uuid.UUID
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// Validate validates the update user input.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Email != nil {
		errs = validateEmail(errs, *i.Email)
	}
	if i.Password != nil {
		errs = validatePassword(errs, *i.Password)
	}
	if i.Role != nil && !domain.UserRole(*i.Role).IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be 'viewer' or 'admin'"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	email = strings.TrimSpace(email)
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(email) > 254 {
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func validatePassword(errs []domain.FieldError, pw string) []domain.FieldError {
	if len(pw) < MinPasswordLength {
		return append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(pw) > maxPasswordLength {
		return append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}
	return errs
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
