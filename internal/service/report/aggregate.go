package report

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

// Snapshot is the data a report is computed from. Groups must carry
// their resolved Members.
type Snapshot struct {
	Entries []domain.TimeEntry
	Clients []domain.Client
	Groups  []domain.ClientGroup
}

// Skipped counts entries that contributed nothing to a report.
type Skipped struct {
	MissingClient int
	MissingGroup  int
	EmptyGroup    int
	OutOfRange    int
}

// Total returns the number of skipped entries.
func (s Skipped) Total() int {
	return s.MissingClient + s.MissingGroup + s.EmptyGroup + s.OutOfRange
}

// ByReason returns the counters keyed by a stable reason label.
func (s Skipped) ByReason() map[string]int {
	return map[string]int{
		"missing_client": s.MissingClient,
		"missing_group":  s.MissingGroup,
		"empty_group":    s.EmptyGroup,
		"out_of_range":   s.OutOfRange,
	}
}

// accumulator collects the clients of one Aggregate call in
// first-contribution order.
type accumulator struct {
	byID  map[uuid.UUID]*domain.ClientReport
	order []uuid.UUID
}

func newAccumulator() *accumulator {
	return &accumulator{byID: make(map[uuid.UUID]*domain.ClientReport)}
}

func (a *accumulator) add(c *domain.Client, hours float64, line domain.ReportLine) {
	cr, ok := a.byID[c.ID]
	if !ok {
		cr = &domain.ClientReport{
			Client: domain.ReportClient{
				ID:         c.ID,
				Name:       c.Name,
				HourlyRate: c.HourlyRate,
			},
			Entries: []domain.ReportLine{},
		}
		a.byID[c.ID] = cr
		a.order = append(a.order, c.ID)
	}
	cr.TotalHours += hours
	cr.TotalValue += hours * c.HourlyRate
	cr.Entries = append(cr.Entries, line)
}

func (a *accumulator) clients() []domain.ClientReport {
	out := make([]domain.ClientReport, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, *a.byID[id])
	}
	return out
}

// GroupSplitSuffix formats the annotation appended to a line item that
// came from a group-targeted entry.
func GroupSplitSuffix(groupName string) string {
	return fmt.Sprintf(" (Group split: %s)", groupName)
}

// Aggregate computes the per-client report over rng from snap. Entries are
// walked in slice order. Entries whose target cannot be resolved, and
// entries dated outside rng, are left out and counted in Skipped.
// Aggregate is pure: equal inputs give equal outputs.
func Aggregate(rng domain.DateRange, snap Snapshot) (*domain.Report, Skipped) {
	clients := make(map[uuid.UUID]*domain.Client, len(snap.Clients))
	for i := range snap.Clients {
		clients[snap.Clients[i].ID] = &snap.Clients[i]
	}
	groups := make(map[uuid.UUID]*domain.ClientGroup, len(snap.Groups))
	for i := range snap.Groups {
		groups[snap.Groups[i].ID] = &snap.Groups[i]
	}

	acc := newAccumulator()
	var skipped Skipped

	for _, e := range snap.Entries {
		if !rng.Contains(e.Date) {
			skipped.OutOfRange++
			continue
		}

		switch t := e.Target.(type) {
		case domain.ClientTarget:
			c, ok := clients[t.ClientID]
			if !ok {
				skipped.MissingClient++
				continue
			}
			acc.add(c, e.Hours, lineFor(e, e.Hours, e.Description))

		case domain.GroupTarget:
			g, ok := groups[t.GroupID]
			if !ok {
				skipped.MissingGroup++
				continue
			}
			if len(g.Members) == 0 {
				skipped.EmptyGroup++
				continue
			}
			share := e.Hours / float64(len(g.Members))
			desc := e.Description + GroupSplitSuffix(g.Name)
			for i := range g.Members {
				acc.add(&g.Members[i], share, lineFor(e, share, desc))
			}

		default:
			skipped.MissingClient++
		}
	}

	out := acc.clients()
	slices.SortStableFunc(out, func(a, b domain.ClientReport) int {
		switch {
		case a.TotalValue > b.TotalValue:
			return -1
		case a.TotalValue < b.TotalValue:
			return 1
		default:
			return 0
		}
	})

	report := &domain.Report{
		Period:  rng,
		Clients: out,
	}
	for _, c := range out {
		report.Summary.TotalHours += c.TotalHours
		report.Summary.TotalValue += c.TotalValue
	}
	report.Summary.ClientCount = len(out)

	return report, skipped
}

func lineFor(e domain.TimeEntry, hours float64, desc string) domain.ReportLine {
	return domain.ReportLine{
		EntryID:      e.ID,
		Date:         e.Date,
		Hours:        hours,
		Description:  desc,
		ActivityType: e.ActivityTypeName,
	}
}
