package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
)

// loginResultMsg reports the outcome of a login dispatch.
type loginResultMsg struct {
	err error
}

// loginView is the entry screen shown when no session was hydrated.
// It embeds a huh form; on success it replaces itself with the
// dashboard so esc cannot navigate back to a stale login.
type loginView struct {
	state    *SharedState
	form     *huh.Form
	username string
	password string
	loading  bool
	errText  string
}

func newLoginView(state *SharedState) *loginView {
	v := &loginView{state: state}
	v.form = v.buildForm()
	return v
}

func (v *loginView) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&v.username).
				Validate(nonEmpty("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.password).
				Validate(nonEmpty("password")),
		),
	).WithTheme(smartrecHuhTheme()).WithShowHelp(false)
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "Login" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log in")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (v *loginView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		v.loading = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			v.password = ""
			v.form = v.buildForm()
			return v, v.form.Init()
		}
		return v, replaceView(newDashboardView(v.state))

	case tea.KeyMsg:
		if v.loading {
			return v, nil
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.loading {
		v.loading = true
		v.errText = ""
		store := v.state.App.Store
		username, password := v.username, v.password
		return v, tea.Batch(cmd, func() tea.Msg {
			if err := store.Login(context.Background(), username, password); err != nil {
				return loginResultMsg{err: err}
			}
			return loginResultMsg{}
		})
	}
	return v, cmd
}

func (v *loginView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("Sign in") + "\n\n")
	if v.loading {
		b.WriteString("  " + formatter.StyleDim.Render("Signing in...") + "\n")
		return b.String()
	}
	if v.errText != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.errText) + "\n\n")
	}
	b.WriteString(v.form.View())
	b.WriteString(fmt.Sprintf("\n  %s\n", formatter.StyleDim.Render("No account? Run `smartrec signup --help`.")))
	return b.String()
}
