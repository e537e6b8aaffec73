package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/timebill-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/timebill-backend/internal/auth"
	"github.com/heartmarshall/timebill-backend/internal/domain"
	usersvc "github.com/heartmarshall/timebill-backend/internal/service/user"
)

func createAdminCmd(open opener) *cobra.Command {
	var in usersvc.CreateUserInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Long: "Create an admin account. Missing --name, --email or --password values\n" +
			"are read from stdin, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptMissing(cmd.InOrStdin(), cmd.OutOrStdout(), &in); err != nil {
				return err
			}
			in.Role = string(domain.UserRoleAdmin)

			ctx, cancel := context.WithTimeout(cmd.Context(), defaultTimeout)
			defer cancel()

			e, closeEnv, err := open(ctx)
			if err != nil {
				return err
			}
			defer closeEnv()

			svc := usersvc.NewService(
				e.logger,
				user.New(e.pool),
				auth.NewPasswordHasher(e.cfg.Auth.PasswordHashCost),
				audit.New(e.pool),
				postgres.NewTxManager(e.pool),
			)

			u, err := svc.CreateAccount(ctx, uuid.Nil, in)
			if err != nil {
				var ve *domain.ValidationError
				if errors.As(err, &ve) {
					return fmt.Errorf("invalid input: %s", ve.Error())
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Admin %q created (id %s).\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "login email")
	cmd.Flags().StringVar(&in.Password, "password", "", "initial password")
	return cmd
}

func promoteCmd(open opener) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.ToLower(strings.TrimSpace(email))
			if email == "" {
				return errors.New("--email is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), defaultTimeout)
			defer cancel()

			e, closeEnv, err := open(ctx)
			if err != nil {
				return err
			}
			defer closeEnv()

			users := user.New(e.pool)
			u, err := users.GetByEmail(ctx, email)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("no user with email %q", email)
				}
				return err
			}
			if u.Role == domain.UserRoleAdmin {
				fmt.Fprintf(cmd.OutOrStdout(), "User %q is already an admin.\n", email)
				return nil
			}

			role := domain.UserRoleAdmin
			if _, err := users.Update(ctx, u.ID, domain.UserUpdateParams{Role: &role}); err != nil {
				return fmt.Errorf("promote %s: %w", email, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "User %q promoted to admin.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user to promote")
	return cmd
}

// promptMissing fills empty fields of in from r.
func promptMissing(r io.Reader, w io.Writer, in *usersvc.CreateUserInput) error {
	sc := bufio.NewScanner(r)
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &in.Name},
		{"Email", &in.Email},
		{"Password", &in.Password},
	}

	for _, f := range fields {
		if *f.dst != "" {
			continue
		}
		fmt.Fprintf(w, "%s: ", f.label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read %s: %w", strings.ToLower(f.label), err)
			}
			return fmt.Errorf("%s is required", strings.ToLower(f.label))
		}
		*f.dst = strings.TrimSpace(sc.Text())
	}
	return nil
}
