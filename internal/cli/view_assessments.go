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

// assessmentsLoadedMsg signals that the assessment list fetch settled.
type assessmentsLoadedMsg struct {
	err error
}

// assessmentListView shows the role-appropriate assessment list with a
// movable cursor. Enter opens the detail view.
type assessmentListView struct {
	state   *SharedState
	loading bool
	errText string
	cursor  int
}

func newAssessmentListView(state *SharedState) *assessmentListView {
	return &assessmentListView{state: state, loading: true}
}

func (v *assessmentListView) ID() ViewID    { return ViewAssessmentList }
func (v *assessmentListView) Title() string { return "Assessments" }

func (v *assessmentListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *assessmentListView) Init() tea.Cmd {
	return v.loadData()
}

func (v *assessmentListView) loadData() tea.Cmd {
	store := v.state.App.Store
	role := v.state.App.Store.Snapshot().Auth.Role
	return func() tea.Msg {
		ctx := context.Background()
		if role == domain.RoleInterviewee {
			return assessmentsLoadedMsg{err: store.FetchIntervieweeAssessments(ctx)}
		}
		return assessmentsLoadedMsg{err: store.FetchAssessments(ctx)}
	}
}

// list returns the slice this role reads from.
func (v *assessmentListView) list() []domain.Assessment {
	snap := v.state.App.Store.Snapshot()
	if snap.Auth.Role == domain.RoleInterviewee {
		return snap.Assessment.IntervieweeAssessments
	}
	return snap.Assessment.Assessments
}

func (v *assessmentListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assessmentsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.errText = v.state.App.Store.Snapshot().Assessment.Err
			return v, nil
		}
		v.errText = ""
		if n := len(v.list()); v.cursor >= n {
			v.cursor = max(0, n-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		list := v.list()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(list)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(list) {
				return v, pushView(newAssessmentDetailView(v.state, list[v.cursor].ID))
			}
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *assessmentListView) View() string {
	if v.loading {
		return "\n  " + formatter.StyleDim.Render("Loading...")
	}
	if v.errText != "" {
		return "\n  " + formatter.StyleRed.Render(v.errText)
	}

	list := v.list()
	if len(list) == 0 {
		return "\n  " + formatter.StyleDim.Render("No assessments.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, a := range list {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s  %s\n",
			cursor,
			nameStyle.Render(a.Title),
			formatter.StyleDim.Render(fmt.Sprintf("%d min", a.TimeLimit)),
			formatter.PublishedMark(a.IsPublished),
		))
	}
	return b.String()
}
