package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

// dashboardLoadedMsg signals that the dashboard's data has settled.
type dashboardLoadedMsg struct {
	err error
}

// logoutDoneMsg reports the outcome of a logout dispatch.
type logoutDoneMsg struct {
	err error
}

// dashboardView is the home screen: a role-branched menu plus the
// unread notification count.
type dashboardView struct {
	state   *SharedState
	loading bool
	errText string
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "assessments")),
	}
	switch v.state.App.Store.Snapshot().Auth.Role {
	case domain.RoleRecruiter:
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "performance")))
	case domain.RoleInterviewee:
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invitations")))
	}
	return append(bindings,
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "log out")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	store := v.state.App.Store
	return func() tea.Msg {
		return dashboardLoadedMsg{err: store.FetchNotifications(context.Background())}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.errText = v.state.App.Store.Snapshot().Notification.Err
		}
		return v, nil

	case logoutDoneMsg:
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		return v, replaceView(newLoginView(v.state))

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		role := v.state.App.Store.Snapshot().Auth.Role
		switch msg.String() {
		case "a":
			return v, pushView(newAssessmentListView(v.state))
		case "i":
			if role == domain.RoleInterviewee {
				return v, pushView(newInvitationListView(v.state))
			}
		case "n":
			return v, pushView(newNotificationListView(v.state))
		case "p":
			if role == domain.RoleRecruiter {
				return v, pushView(newPerformanceView(v.state))
			}
		case "x":
			store := v.state.App.Store
			return v, func() tea.Msg {
				return logoutDoneMsg{err: store.Logout(context.Background())}
			}
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	snap := v.state.App.Store.Snapshot()
	var b strings.Builder

	b.WriteString("\n  " + formatter.StyleHeader.Render("Smart Recruiter") + "\n\n")
	if v.errText != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.errText) + "\n\n")
	}

	unread := 0
	for _, n := range snap.Notification.Notifications {
		if !n.IsRead {
			unread++
		}
	}

	switch snap.Auth.Role {
	case domain.RoleRecruiter:
		b.WriteString("  " + menuLine("a", "Assessments", "create and manage assessments") + "\n")
		b.WriteString("  " + menuLine("p", "Performance", "monthly charts and interviewee status") + "\n")
	case domain.RoleInterviewee:
		b.WriteString("  " + menuLine("a", "Assessments", "published assessments available to you") + "\n")
		b.WriteString("  " + menuLine("i", "Invitations", "pending assessment invitations") + "\n")
	}

	notifDesc := "no unread"
	if v.loading {
		notifDesc = "loading..."
	} else if unread > 0 {
		notifDesc = fmt.Sprintf("%d unread", unread)
	}
	b.WriteString("  " + menuLine("n", "Notifications", notifDesc) + "\n")

	return b.String()
}

func menuLine(keyStr, name, desc string) string {
	return fmt.Sprintf("%s %s  %s",
		formatter.StyleGreen.Render("["+keyStr+"]"),
		formatter.StyleBold.Render(name),
		formatter.StyleDim.Render(desc))
}
