package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"viciolinks/internal/console"
	"viciolinks/internal/core/domain"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage operator accounts (admin only)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := a.client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			return table(cmd.OutOrStdout(), "USERNAME\tROLE\tDISABLED", func(w io.Writer) {
				for _, u := range users {
					fmt.Fprintf(w, "%s\t%s\t%t\n", u.Username, u.Role, u.Disabled)
				}
			})
		},
	}

	var (
		in   domain.UserInput
		role string
	)
	save := &cobra.Command{
		Use:   "save <username>",
		Short: "Create an account or update an existing one",
		Long: `Create an account or update an existing one. On update an empty
--password keeps the current password.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Username = args[0]
			in.Role = domain.Role(role)
			if !in.Role.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}

			user, err := a.client.UpdateUser(cmd.Context(), in.Username, in)
			var apiErr *console.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
				user, err = a.client.CreateUser(cmd.Context(), in)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}
	save.Flags().StringVarP(&in.Password, "password", "p", "", "Password, required for new accounts")
	save.Flags().StringVar(&role, "role", string(domain.RoleUser), "Role: admin, user or viewer")
	save.Flags().BoolVar(&in.Disabled, "disabled", false, "Disable the account")

	del := &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.DeleteUser(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, save, del)
	return cmd
}
