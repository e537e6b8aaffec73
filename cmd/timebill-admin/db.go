package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/timebill-backend/internal/auth"
	authsvc "github.com/heartmarshall/timebill-backend/internal/service/auth"
)

func migrateCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), defaultTimeout)
				defer cancel()

				e, closeEnv, err := open(ctx)
				if err != nil {
					return err
				}
				defer closeEnv()

				return postgres.Migrate(ctx, e.pool, e.logger)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), defaultTimeout)
				defer cancel()

				e, closeEnv, err := open(ctx)
				if err != nil {
					return err
				}
				defer closeEnv()

				db := stdlib.OpenDBFromPool(e.pool)
				defer db.Close()

				statuses, err := postgres.MigrationStatus(ctx, db)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return tw.Flush()
			},
		},
	)
	return cmd
}

func cleanupTokensCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), defaultTimeout)
			defer cancel()

			e, closeEnv, err := open(ctx)
			if err != nil {
				return err
			}
			defer closeEnv()

			svc := authsvc.NewService(
				e.logger,
				user.New(e.pool),
				token.New(e.pool),
				postgres.NewTxManager(e.pool),
				auth.NewJWTManager(e.cfg.Auth),
				auth.NewPasswordHasher(e.cfg.Auth.PasswordHashCost),
				e.cfg.Auth,
			)

			n, err := svc.CleanupExpiredTokens(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired/revoked refresh tokens.\n", n)
			return nil
		},
	}
}
