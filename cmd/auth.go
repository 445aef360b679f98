package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/winter3671/TakeMeTrip/internal/domain"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign out and inspect the current session",
	}

	cmd.AddCommand(
		newAuthRegisterCmd(app),
		newAuthLoginCmd(app),
		newAuthLogoutCmd(app),
		newAuthWhoamiCmd(app),
		newAuthStatusCmd(app),
	)

	return cmd
}

func newAuthRegisterCmd(app *app) *cobra.Command {
	var registration domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in with it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := secretFromFlagOrPrompt(app.prompter, registration.Password, "password", "Password")
			if err != nil {
				return err
			}
			registration.Password = password

			if err := app.session.Register(cmd.Context(), registration); err != nil {
				return err
			}
			if !app.session.IsAuthenticated() {
				return fmt.Errorf("refresh profile: %w", domain.ErrAuthExpired)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered and signed in as %s\n", registration.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&registration.Username, "username", "", "Username")
	cmd.Flags().StringVar(&registration.Password, "password", "", "Password (prompted when omitted on a terminal)")
	cmd.Flags().StringVar(&registration.PasswordConfirm, "password-confirm", "", "Password confirmation (defaults to --password)")
	cmd.Flags().StringVar(&registration.Email, "email", "", "Optional e-mail address")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a username and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := secretFromFlagOrPrompt(app.prompter, password, "password", "Password")
			if err != nil {
				return err
			}

			if err := app.session.Login(cmd.Context(), username, secret); err != nil {
				return err
			}
			// A rejected profile refresh ends the session inside Login.
			if !app.session.IsAuthenticated() {
				return fmt.Errorf("refresh profile: %w", domain.ErrAuthExpired)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", username)
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted on a terminal)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Logout(cmd.Context())

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}
}

func newAuthWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in username after checking it with the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.session.IsAuthenticated() {
				return domain.ErrNoSession
			}

			app.session.RefreshProfile(cmd.Context())
			if !app.session.IsAuthenticated() {
				return fmt.Errorf("refresh profile: %w", domain.ErrAuthExpired)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.session.Status().Username)
			return err
		},
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the locally stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status := app.session.Status()
			if asJSON {
				return writeJSON(cmd, status)
			}

			return writeSessionStatus(cmd, status, app.now())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func writeSessionStatus(cmd *cobra.Command, status domain.SessionStatus, now time.Time) error {
	out := cmd.OutOrStdout()
	if !status.Authenticated {
		_, err := fmt.Fprintln(out, "Not signed in")
		return err
	}

	name := status.Username
	if name == "" {
		name = "unknown user"
	}
	if _, err := fmt.Fprintf(out, "Signed in as %s\n", name); err != nil {
		return err
	}

	if status.ExpiresAt == nil {
		return nil
	}

	state := "expires"
	if !status.ExpiresAt.After(now) {
		state = "expired"
	}
	_, err := fmt.Fprintf(out, "Token %s %s\n", state, status.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return err
}
