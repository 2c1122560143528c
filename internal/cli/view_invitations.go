package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
)

// invitationsLoadedMsg signals that the invitation list fetch settled.
type invitationsLoadedMsg struct {
	err error
}

// invitationAcceptedMsg reports the outcome of an accept dispatch.
type invitationAcceptedMsg struct {
	err error
}

// invitationListView shows the interviewee's pending invitations.
// Enter accepts the selected one.
type invitationListView struct {
	state   *SharedState
	loading bool
	errText string
	cursor  int
}

func newInvitationListView(state *SharedState) *invitationListView {
	return &invitationListView{state: state, loading: true}
}

func (v *invitationListView) ID() ViewID    { return ViewInvitationList }
func (v *invitationListView) Title() string { return "Invitations" }

func (v *invitationListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *invitationListView) Init() tea.Cmd {
	return v.loadData()
}

func (v *invitationListView) loadData() tea.Cmd {
	store := v.state.App.Store
	return func() tea.Msg {
		return invitationsLoadedMsg{err: store.FetchInvitations(context.Background())}
	}
}

func (v *invitationListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invitationsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.errText = v.state.App.Store.Snapshot().Invitation.Err
			return v, nil
		}
		v.errText = ""
		if n := len(v.state.App.Store.Snapshot().Invitation.Invitations); v.cursor >= n {
			v.cursor = max(0, n-1)
		}
		return v, nil

	case invitationAcceptedMsg:
		if msg.err != nil {
			v.errText = msg.err.Error()
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		invs := v.state.App.Store.Snapshot().Invitation.Invitations
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(invs)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(invs) {
				store := v.state.App.Store
				id := invs[v.cursor].ID
				return v, func() tea.Msg {
					return invitationAcceptedMsg{err: store.AcceptInvitation(context.Background(), id)}
				}
			}
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *invitationListView) View() string {
	if v.loading {
		return "\n  " + formatter.StyleDim.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	if v.errText != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.errText) + "\n\n")
	}

	invs := v.state.App.Store.Snapshot().Invitation.Invitations
	if len(invs) == 0 {
		b.WriteString("  " + formatter.StyleDim.Render("No pending invitations."))
		return b.String()
	}
	for i, inv := range invs {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		expiry := ""
		if inv.ExpiryDate != "" {
			expiry = formatter.StyleDim.Render("expires " + inv.ExpiryDate)
		}
		b.WriteString(fmt.Sprintf("  %sassessment %d  %s  %s\n",
			cursor, inv.AssessmentID, formatter.InvitationBadge(inv.Status), expiry))
	}
	return b.String()
}
