// Package cli wires the cobra command tree and the bubbletea TUI over
// the shared store. Commands dispatch store operations and render slice
// state; they hold no state of their own.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/session"
	"github.com/smartrecruiter/smartrec/internal/store"
)

// App holds everything a command needs. Client is only used for the
// per-view resources (feedback, submissions) that no slice caches.
type App struct {
	Store   *store.Store
	Client  *api.Client
	Session session.Store
	Log     zerolog.Logger

	// IsInteractive reports whether stdin is a terminal; wired in main.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "smartrec" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "smartrec",
		Short:         "Terminal client for the Smart Recruiter API",
		SilenceUsage:  true,
		SilenceErrors: false,
		// Bare invocation opens the TUI on a terminal, help otherwise.
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newForgotPasswordCmd(app),
		newResetPasswordCmd(app),
		newAssessmentCmd(app),
		newQuestionCmd(app),
		newInviteCmd(app),
		newNotificationCmd(app),
		newFeedbackCmd(app),
		newPerformanceCmd(app),
		newTUICmd(app),
	)

	return root
}
