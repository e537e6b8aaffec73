// Package report builds per-client billing reports from time entries.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/timebill-backend/internal/config"
	"github.com/heartmarshall/timebill-backend/internal/domain"
	"github.com/heartmarshall/timebill-backend/pkg/ctxutil"
)

type entryRepo interface {
	ListByRange(ctx context.Context, rng domain.DateRange) ([]domain.TimeEntry, error)
}

type clientRepo interface {
	List(ctx context.Context) ([]domain.Client, error)
}

type groupRepo interface {
	List(ctx context.Context) ([]domain.ClientGroup, error)
}

type observer interface {
	ObserveReport(d time.Duration, err error, skipped map[string]int)
}

// Service generates reports. It holds no per-request state; concurrent
// calls share nothing.
type Service struct {
	log          *slog.Logger
	entries      entryRepo
	clients      clientRepo
	groups       groupRepo
	obs          observer
	maxRangeDays int
}

// NewService creates a report service. obs may be nil.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	clients clientRepo,
	groups groupRepo,
	obs observer,
	cfg config.ReportConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "report"),
		entries:      entries,
		clients:      clients,
		groups:       groups,
		obs:          obs,
		maxRangeDays: cfg.MaxRangeDays,
	}
}

// Generate validates the period, loads entries, clients and groups in
// parallel, and aggregates them. Any authenticated role may call it.
// Validation failures return before any repository is called. A failed
// load fails the whole report.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*domain.Report, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	rng, err := input.Range(s.maxRangeDays)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	snap, err := s.load(ctx, rng)
	if err != nil {
		s.observe(time.Since(start), err, Skipped{})
		return nil, fmt.Errorf("report.Generate: %w", err)
	}

	report, skipped := Aggregate(rng, snap)
	elapsed := time.Since(start)
	s.observe(elapsed, nil, skipped)

	if skipped.Total() > 0 {
		s.log.DebugContext(ctx, "entries skipped",
			slog.Int("missing_client", skipped.MissingClient),
			slog.Int("missing_group", skipped.MissingGroup),
			slog.Int("empty_group", skipped.EmptyGroup),
			slog.Int("out_of_range", skipped.OutOfRange),
		)
	}

	s.log.InfoContext(ctx, "report generated",
		slog.String("start_date", rng.Start.Format(domain.DateLayout)),
		slog.String("end_date", rng.End.Format(domain.DateLayout)),
		slog.Int("entries", len(snap.Entries)),
		slog.Int("clients", report.Summary.ClientCount),
		slog.Duration("duration", elapsed),
	)

	return report, nil
}

func (s *Service) load(ctx context.Context, rng domain.DateRange) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := s.entries.ListByRange(gctx, rng)
		if err != nil {
			return fmt.Errorf("load time entries: %w", err)
		}
		snap.Entries = entries
		return nil
	})
	g.Go(func() error {
		clients, err := s.clients.List(gctx)
		if err != nil {
			return fmt.Errorf("load clients: %w", err)
		}
		snap.Clients = clients
		return nil
	})
	g.Go(func() error {
		groups, err := s.groups.List(gctx)
		if err != nil {
			return fmt.Errorf("load client groups: %w", err)
		}
		snap.Groups = groups
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Service) observe(d time.Duration, err error, skipped Skipped) {
	if s.obs == nil {
		return
	}
	s.obs.ObserveReport(d, err, skipped.ByReason())
}
