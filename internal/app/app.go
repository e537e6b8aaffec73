// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/activitytype"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/client"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/clientgroup"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/timeentry"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/timebill-backend/internal/auth"
	"github.com/heartmarshall/timebill-backend/internal/config"
	"github.com/heartmarshall/timebill-backend/internal/metrics"
	activitytypesvc "github.com/heartmarshall/timebill-backend/internal/service/activitytype"
	authsvc "github.com/heartmarshall/timebill-backend/internal/service/auth"
	clientsvc "github.com/heartmarshall/timebill-backend/internal/service/client"
	groupsvc "github.com/heartmarshall/timebill-backend/internal/service/clientgroup"
	"github.com/heartmarshall/timebill-backend/internal/service/dashboard"
	"github.com/heartmarshall/timebill-backend/internal/service/report"
	timeentrysvc "github.com/heartmarshall/timebill-backend/internal/service/timeentry"
	usersvc "github.com/heartmarshall/timebill-backend/internal/service/user"
	"github.com/heartmarshall/timebill-backend/internal/transport/middleware"
	"github.com/heartmarshall/timebill-backend/internal/transport/rest"
)

// Run loads configuration, connects to PostgreSQL, optionally applies
// migrations and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting timebill",
		slog.String("version", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	var m *metrics.Metrics
	if !cfg.Metrics.Disabled {
		m = metrics.New()
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           NewHandler(cfg, pool, logger, m, limiter),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// NewHandler builds the full HTTP handler over pool. m may be nil, which
// disables /metrics and request instrumentation.
func NewHandler(
	cfg *config.Config,
	pool *pgxpool.Pool,
	logger *slog.Logger,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
) http.Handler {
	// Repositories.
	users := user.New(pool)
	tokens := token.New(pool)
	clients := client.New(pool)
	groups := clientgroup.New(pool)
	types := activitytype.New(pool)
	entries := timeentry.New(pool)
	auditLog := audit.New(pool)
	tx := postgres.NewTxManager(pool)

	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)
	jwt := auth.NewJWTManager(cfg.Auth)

	// Services.
	authService := authsvc.NewService(logger, users, tokens, tx, jwt, hasher, cfg.Auth)
	userService := usersvc.NewService(logger, users, hasher, auditLog, tx)
	clientService := clientsvc.NewService(logger, clients, auditLog, tx)
	groupService := groupsvc.NewService(logger, groups, clients, auditLog, tx)
	typeService := activitytypesvc.NewService(logger, types, auditLog, tx)
	entryService := timeentrysvc.NewService(logger, entries, types, clients, groups, auditLog, tx)
	reportService := report.NewService(logger, entries, clients, groups, m, cfg.Report)
	dashboardService := dashboard.NewService(logger, entries, clients, groups, types)

	handlers := rest.Handlers{
		Health:       rest.NewHealthHandler(pool, Version),
		Auth:         rest.NewAuthHandler(authService, logger),
		Report:       rest.NewReportHandler(reportService, logger),
		Dashboard:    rest.NewDashboardHandler(dashboardService, logger),
		Client:       rest.NewClientHandler(clientService, logger),
		Group:        rest.NewGroupHandler(groupService, logger),
		ActivityType: rest.NewActivityTypeHandler(typeService, logger),
		TimeEntry:    rest.NewTimeEntryHandler(entryService, logger),
		User:         rest.NewUserHandler(userService, logger),
		LoginLimit:   limiter.Limit(cfg.RateLimit.LoginPerMinute),
		RefreshLimit: limiter.Limit(cfg.RateLimit.RefreshPerMinute),
	}
	if m != nil {
		handlers.Metrics = m.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
		handlers.RouteObserver = middleware.Metrics(m)
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(rest.NewRouter(handlers))
}
