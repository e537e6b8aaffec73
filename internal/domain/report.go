package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is the per-client billing summary for a period.
// Clients is sorted by TotalValue descending.
type Report struct {
	Period  DateRange
	Summary ReportSummary
	Clients []ClientReport
}

// ReportSummary holds grand totals over all clients in a report.
type ReportSummary struct {
	TotalHours  float64
	TotalValue  float64
	ClientCount int
}

// ReportClient is the client snapshot echoed in a report.
type ReportClient struct {
	ID         uuid.UUID
	Name       string
	HourlyRate float64
}

// ClientReport accumulates one client's share of the period.
type ClientReport struct {
	Client     ReportClient
	TotalHours float64
	TotalValue float64
	Entries    []ReportLine
}

// ReportLine is one time entry's contribution to one client.
// For group splits Hours is the member's share and Description carries
// the group annotation.
type ReportLine struct {
	EntryID      uuid.UUID
	Date         time.Time
	Hours        float64
	Description  string
	ActivityType string
}
