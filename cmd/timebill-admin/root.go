package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timebill-backend/internal/app"
	"github.com/heartmarshall/timebill-backend/internal/config"
)

const defaultTimeout = 30 * time.Second

// env carries what every subcommand needs once config is loaded.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "timebill-admin",
		Short:         "Operator tasks for the timebill service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default: CONFIG_PATH or ./config.yaml)")

	open := func(ctx context.Context) (*env, func(), error) {
		return openEnv(ctx, configPath)
	}

	cmd.AddCommand(
		createAdminCmd(open),
		promoteCmd(open),
		migrateCmd(open),
		cleanupTokensCmd(open),
		auditCmd(open),
		versionCmd(),
	)
	return cmd
}

type opener func(ctx context.Context) (*env, func(), error)

func openEnv(ctx context.Context, configPath string) (*env, func(), error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return &env{cfg: cfg, logger: logger, pool: pool}, pool.Close, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "timebill-admin", app.BuildVersion())
		},
	}
}
