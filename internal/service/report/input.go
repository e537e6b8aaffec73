package report

import (
	"fmt"
	"time"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// GenerateInput is the requested report period as YYYY-MM-DD strings.
type GenerateInput struct {
	StartDate string
	EndDate   string
}

// Range parses and validates the period. maxDays <= 0 disables the
// length check.
func (i GenerateInput) Range(maxDays int) (domain.DateRange, error) {
	var errs []domain.FieldError

	start, startOK := parseDateField(&errs, "startDate", i.StartDate)
	end, endOK := parseDateField(&errs, "endDate", i.EndDate)

	if startOK && endOK {
		rng := domain.NewDateRange(start, end)
		switch {
		case rng.Start.After(rng.End):
			errs = append(errs, domain.FieldError{Field: "startDate", Message: "must not be after endDate"})
		case maxDays > 0 && rng.Days() > maxDays:
			errs = append(errs, domain.FieldError{Field: "endDate", Message: fmt.Sprintf("range exceeds %d days", maxDays)})
		default:
			return rng, nil
		}
	}

	return domain.DateRange{}, &domain.ValidationError{Errors: errs}
}

func parseDateField(errs *[]domain.FieldError, field, value string) (time.Time, bool) {
	if value == "" {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "required"})
		return time.Time{}, false
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		return time.Time{}, false
	}
	return d, true
}
