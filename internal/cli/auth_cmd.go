package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the Smart Recruiter API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("username and password are required")
				}
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().Title("Username").Value(&username).Validate(nonEmpty("username")),
					huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password).Validate(nonEmpty("password")),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			if err := app.Store.Login(cmd.Context(), username, password); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Auth.Err)
			}
			auth := app.Store.Snapshot().Auth
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", username, auth.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newSignupCmd(app *App) *cobra.Command {
	var req domain.SignupRequest
	var roleStr, gender, company string
	var consent bool

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := domain.ParseRole(roleStr)
			if err != nil {
				return err
			}
			req.Role = role
			req.Gender = gender
			switch role {
			case domain.RoleRecruiter:
				if company == "" {
					return fmt.Errorf("--company is required for the recruiter role")
				}
				req.CompanyName = company
			case domain.RoleInterviewee:
				req.Consent = &consent
			}

			if err := app.Store.Signup(cmd.Context(), req); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Auth.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", req.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "username")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&roleStr, "role", "", "recruiter or interviewee")
	cmd.Flags().StringVar(&gender, "gender", "", "male, female or other")
	cmd.Flags().StringVar(&company, "company", "", "company name (recruiters)")
	cmd.Flags().BoolVar(&consent, "consent", false, "data processing consent (interviewees)")
	for _, f := range []string{"username", "first-name", "last-name", "email", "password", "role", "gender"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Auth.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newForgotPasswordCmd(app *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.ForgotPassword(cmd.Context(), email); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Auth.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password reset token sent; check your email")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newResetPasswordCmd(app *App) *cobra.Command {
	var token, password string
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Redeem a password reset token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.ResetPassword(cmd.Context(), token, password); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Auth.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "reset token")
	cmd.Flags().StringVar(&password, "new-password", "", "new password")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("new-password")
	return cmd
}

func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}
