// Package dashboard computes the admin overview counters.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/internal/service/report"
	"github.com/heartmarshall/timebill-backend/pkg/ctxutil"
)

type entryRepo interface {
	ListAll(ctx context.Context) ([]domain.TimeEntry, error)
}

type clientRepo interface {
	List(ctx context.Context) ([]domain.Client, error)
}

type groupRepo interface {
	List(ctx context.Context) ([]domain.ClientGroup, error)
}

type activityTypeRepo interface {
	Count(ctx context.Context) (int, error)
}

// allTime spans every representable calendar day an entry can carry.
var allTime = domain.DateRange{
	Start: time.Time{},
	End:   time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC),
}

// Service computes dashboard statistics.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	clients clientRepo
	groups  groupRepo
	types   activityTypeRepo
}

// NewService creates a dashboard service.
func NewService(logger *slog.Logger, entries entryRepo, clients clientRepo, groups groupRepo, types activityTypeRepo) *Service {
	return &Service{
		log:     logger.With("service", "dashboard"),
		entries: entries,
		clients: clients,
		groups:  groups,
		types:   types,
	}
}

// Stats returns global counts. TotalHours sums every entry as recorded;
// TotalValue is the billed value of all entries as the report computes it,
// so group splits and dangling references are treated the same way there.
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var (
		snap      report.Snapshot
		typeCount int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Entries, err = s.entries.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Clients, err = s.clients.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Groups, err = s.groups.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		typeCount, err = s.types.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard.Stats: %w", err)
	}

	stats := &domain.DashboardStats{
		Clients:       len(snap.Clients),
		Groups:        len(snap.Groups),
		ActivityTypes: typeCount,
		TimeEntries:   len(snap.Entries),
	}
	for _, e := range snap.Entries {
		stats.TotalHours += e.Hours
	}

	rep, skipped := report.Aggregate(allTime, snap)
	stats.TotalValue = rep.Summary.TotalValue
	if skipped.Total() > 0 {
		s.log.DebugContext(ctx, "dashboard skipped entries", slog.Int("count", skipped.Total()))
	}

	return stats, nil
}
