package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/timebill-backend/internal/domain"
)

func auditCmd(open opener) *cobra.Command {
	var (
		entity string
		id     string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the change history of one entity",
		Example: "  timebill-admin audit --entity client --id 3f0c...\n" +
			"  timebill-admin audit --entity time_entry --id 9b1e... --limit 5",
		RunE: func(cmd *cobra.Command, args []string) error {
			et, err := parseEntityType(entity)
			if err != nil {
				return err
			}
			entityID, err := uuid.Parse(id)
			if err != nil {
				return fmt.Errorf("invalid --id: %w", err)
			}
			if limit <= 0 {
				return errors.New("--limit must be positive")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), defaultTimeout)
			defer cancel()

			e, closeEnv, err := open(ctx)
			if err != nil {
				return err
			}
			defer closeEnv()

			records, err := audit.New(e.pool).GetByEntity(ctx, et, entityID, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No audit records.")
				return nil
			}
			return printAudit(cmd, records)
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "", "client, client_group, activity_type, time_entry or user")
	cmd.Flags().StringVar(&id, "id", "", "entity id")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of records")
	return cmd
}

// parseEntityType accepts both the stored form (CLIENT_GROUP) and the
// dashed or lowercase forms operators tend to type.
func parseEntityType(s string) (domain.EntityType, error) {
	et := domain.EntityType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	if !et.IsValid() {
		return "", fmt.Errorf("unknown --entity %q", s)
	}
	return et, nil
}

func printAudit(cmd *cobra.Command, records []domain.AuditRecord) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tACTION\tUSER\tCHANGES")
	for _, r := range records {
		changes := "-"
		if len(r.Changes) > 0 {
			b, err := json.Marshal(r.Changes)
			if err != nil {
				return fmt.Errorf("encode changes: %w", err)
			}
			changes = string(b)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.Action, r.UserID, changes)
	}
	return tw.Flush()
}
