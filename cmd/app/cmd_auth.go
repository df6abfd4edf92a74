package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/qoe-monitor/infrastructure"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/formatter"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

func newLoginCommand(kernel *infrastructure.Kernel) *cobra.Command {
	var req entities.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := kernel.InjectAuthService().Login(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")
	return cmd
}

func newLogoutCommand(kernel *infrastructure.Kernel) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := kernel.InjectAuthService().Logout(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(kernel *infrastructure.Kernel) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the signed in user",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := kernel.InjectAuthService().GetProfile(cmd.Context())
			if err != nil {
				return err
			}

			sessionService := kernel.InjectSessionService()
			expiresAt, _ := sessionService.ExpiresAt()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Profile(&user, expiresAt))
			if sessionService.IsExpiringSoon() {
				fmt.Fprintln(out, "Session expires soon, login again to extend it.")
			}
			return nil
		},
	}
}
