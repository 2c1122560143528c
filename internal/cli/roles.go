package cli

import (
	"fmt"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

// requireAuth fails fast when there is no live session.
func requireAuth(app *App) error {
	if !app.Store.Snapshot().Auth.Authenticated {
		return fmt.Errorf("not logged in; run `smartrec login` first")
	}
	return nil
}

// requireRole gates a role-specific command. The role set is closed, so
// anything outside it means the session is unusable, not merely wrong.
func requireRole(app *App, want domain.Role) error {
	if err := requireAuth(app); err != nil {
		return err
	}
	got := app.Store.Snapshot().Auth.Role
	switch got {
	case domain.RoleRecruiter, domain.RoleInterviewee:
		if got != want {
			return fmt.Errorf("this command requires the %s role (you are logged in as %s)", want, got)
		}
		return nil
	default:
		return fmt.Errorf("session has an unrecognized role; log in again")
	}
}
