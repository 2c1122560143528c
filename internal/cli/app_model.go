package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
)

// storeChangedMsg signals a store transition applied outside the active
// view's own dispatch, so the whole frame re-renders from a fresh
// snapshot.
type storeChangedMsg struct{}

// appModel is the root bubbletea Model for the TUI. It manages a view
// stack; the bottom view is the login screen or the dashboard depending
// on whether a session was hydrated at startup.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	storeCh <-chan struct{}
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	ch, _ := app.Store.Subscribe()
	m := appModel{state: state, storeCh: ch}

	if app.Store.Snapshot().Auth.Authenticated {
		m.viewStack = []View{newDashboardView(state)}
	} else {
		m.viewStack = []View{newLoginView(state)}
	}
	return m
}

// listenStore blocks until the store signals a change. Signals are
// coalesced by the store, so this never piles up messages.
func (m appModel) listenStore() tea.Cmd {
	ch := m.storeCh
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listenStore()}
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast so underlying views reload after mutations made in
		// views above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case formCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews())

	case storeChangedMsg:
		// Views render from snapshots, so re-arming the listener is all
		// that is needed; bubbletea redraws after every Update.
		return m, m.listenStore()

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Views with their own text input get every key, including q and esc.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("smartrec")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.StyleDim.Render("›") + " " +
			formatter.StyleDim.Render(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	if auth := m.state.App.Store.Snapshot().Auth; auth.Authenticated {
		role := formatter.StyleGreen.Render(string(auth.Role))
		header += "  " + formatter.StyleDim.Render("[") + role + formatter.StyleDim.Render("]")
	}

	sep := formatter.StyleDim.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.StyleDim.Render(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.StyleDim.Render("esc: back"))
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.StyleDim.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
