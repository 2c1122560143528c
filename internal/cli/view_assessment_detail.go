package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
)

// assessmentDetailLoadedMsg signals that the detail and question
// fetches both settled.
type assessmentDetailLoadedMsg struct {
	err error
}

// assessmentDetailView shows one assessment with its questions.
type assessmentDetailView struct {
	state        *SharedState
	assessmentID int
	loading      bool
	errText      string
}

func newAssessmentDetailView(state *SharedState, id int) *assessmentDetailView {
	return &assessmentDetailView{state: state, assessmentID: id, loading: true}
}

func (v *assessmentDetailView) ID() ViewID    { return ViewAssessmentDetail }
func (v *assessmentDetailView) Title() string { return "Detail" }

func (v *assessmentDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *assessmentDetailView) Init() tea.Cmd {
	return v.loadData()
}

func (v *assessmentDetailView) loadData() tea.Cmd {
	store := v.state.App.Store
	id := v.assessmentID
	return func() tea.Msg {
		ctx := context.Background()
		if err := store.FetchAssessmentDetail(ctx, id); err != nil {
			return assessmentDetailLoadedMsg{err: err}
		}
		return assessmentDetailLoadedMsg{err: store.FetchQuestions(ctx, id)}
	}
}

func (v *assessmentDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assessmentDetailLoadedMsg:
		v.loading = false
		if msg.err != nil {
			snap := v.state.App.Store.Snapshot()
			v.errText = snap.Assessment.Err
			if v.errText == "" {
				v.errText = snap.Question.Err
			}
			return v, nil
		}
		v.errText = ""
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *assessmentDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.StyleDim.Render("Loading...")
	}
	if v.errText != "" {
		return "\n  " + formatter.StyleRed.Render(v.errText)
	}

	snap := v.state.App.Store.Snapshot()
	a := snap.Assessment.Current
	if a == nil {
		return "\n  " + formatter.StyleDim.Render("Not found.")
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render(a.Title) + "  " + formatter.PublishedMark(a.IsPublished) + "\n")
	if a.Description != "" {
		b.WriteString("  " + a.Description + "\n")
	}
	b.WriteString("  " + formatter.StyleDim.Render(fmt.Sprintf("Time limit: %d min", a.TimeLimit)) + "\n\n")

	qs := snap.Question.Questions
	if len(qs) == 0 {
		b.WriteString("  " + formatter.StyleDim.Render("No questions yet.") + "\n")
		return b.String()
	}
	for i, q := range qs {
		b.WriteString(fmt.Sprintf("  %2d. %s %s\n", i+1,
			formatter.StyleDim.Render("["+string(q.Type)+"]"), q.Text))
		for j, c := range q.Choices {
			b.WriteString(fmt.Sprintf("        %c) %s\n", 'a'+j, c))
		}
	}
	return b.String()
}
