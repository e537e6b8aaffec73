package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used on the wire and in queries.
const DateLayout = "2006-01-02"

// MinEntryHours is the smallest amount of time a single entry may record.
const MinEntryHours = 0.1

// Target is the billing destination of a time entry: either a single
// client or a client group whose members share the hours equally.
// The set of implementations is closed: ClientTarget and GroupTarget.
type Target interface {
	Kind() TargetKind
	RefID() uuid.UUID
	isTarget()
}

// ClientTarget bills all hours to one client.
type ClientTarget struct {
	ClientID uuid.UUID
}

func (ClientTarget) Kind() TargetKind { return TargetKindClient }
func (t ClientTarget) RefID() uuid.UUID { return t.ClientID }
func (ClientTarget) isTarget() {}

// GroupTarget prorates hours across the members of a client group.
type GroupTarget struct {
	GroupID uuid.UUID
}

func (GroupTarget) Kind() TargetKind { return TargetKindGroup }
func (t GroupTarget) RefID() uuid.UUID { return t.GroupID }
func (GroupTarget) isTarget() {}

// NewTarget builds a Target from its storage tag and referenced id.
func NewTarget(kind TargetKind, id uuid.UUID) (Target, error) {
	switch kind {
	case TargetKindClient:
		return ClientTarget{ClientID: id}, nil
	case TargetKindGroup:
		return GroupTarget{GroupID: id}, nil
	default:
		return nil, fmt.Errorf("unknown target kind %q", kind)
	}
}

// TimeEntry is a record of hours worked on a given day.
type TimeEntry struct {
	ID               uuid.UUID
	Date             time.Time // midnight UTC of the business day
	Hours            float64
	Description      string
	ActivityTypeID   uuid.UUID
	ActivityTypeName string // resolved on reads
	Target           Target
	OwnerID          uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// TruncateDay returns midnight UTC of the calendar day t falls on in its own location.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange returns a range over [start, end], both truncated to days.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: TruncateDay(start), End: TruncateDay(end)}
}

// Contains reports whether t falls on any day between Start and End inclusive.
// Any time of day on End is inside the range.
func (r DateRange) Contains(t time.Time) bool {
	day := TruncateDay(t)
	return !day.Before(r.Start) && day.Before(r.End.AddDate(0, 0, 1))
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}
