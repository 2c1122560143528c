package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
)

// notificationsLoadedMsg signals that the notification fetch settled.
type notificationsLoadedMsg struct {
	err error
}

// notificationReadMsg reports the outcome of a mark-read dispatch. The
// flip itself is optimistic, so the view only surfaces failures.
type notificationReadMsg struct {
	err error
}

// notificationListView lists notifications; enter marks the selected
// one read.
type notificationListView struct {
	state   *SharedState
	loading bool
	errText string
	cursor  int
}

func newNotificationListView(state *SharedState) *notificationListView {
	return &notificationListView{state: state, loading: true}
}

func (v *notificationListView) ID() ViewID    { return ViewNotificationList }
func (v *notificationListView) Title() string { return "Notifications" }

func (v *notificationListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "mark read")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *notificationListView) Init() tea.Cmd {
	return v.loadData()
}

func (v *notificationListView) loadData() tea.Cmd {
	store := v.state.App.Store
	return func() tea.Msg {
		return notificationsLoadedMsg{err: store.FetchNotifications(context.Background())}
	}
}

func (v *notificationListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.errText = v.state.App.Store.Snapshot().Notification.Err
			return v, nil
		}
		v.errText = ""
		if n := len(v.state.App.Store.Snapshot().Notification.Notifications); v.cursor >= n {
			v.cursor = max(0, n-1)
		}
		return v, nil

	case notificationReadMsg:
		if msg.err != nil {
			v.errText = msg.err.Error()
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		ns := v.state.App.Store.Snapshot().Notification.Notifications
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(ns)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(ns) && !ns[v.cursor].IsRead {
				store := v.state.App.Store
				id := ns[v.cursor].ID
				return v, func() tea.Msg {
					return notificationReadMsg{err: store.MarkNotificationRead(context.Background(), id)}
				}
			}
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *notificationListView) View() string {
	if v.loading {
		return "\n  " + formatter.StyleDim.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	if v.errText != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.errText) + "\n\n")
	}

	ns := v.state.App.Store.Snapshot().Notification.Notifications
	if len(ns) == 0 {
		b.WriteString("  " + formatter.StyleDim.Render("No notifications."))
		return b.String()
	}
	for i, n := range ns {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		msgStyle := formatter.StyleBold
		if n.IsRead {
			msgStyle = formatter.StyleDim
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s\n",
			cursor, formatter.ReadMark(n.IsRead), msgStyle.Render(n.Message)))
	}
	return b.String()
}
