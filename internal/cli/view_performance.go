package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
)

// performanceLoadedMsg signals that all three dashboard fetches ran.
// Fetches fail independently; the first error is carried for display.
type performanceLoadedMsg struct {
	err error
}

// performanceView renders the recruiter dashboards: monthly chart,
// interviewee composition, and qualification status.
type performanceView struct {
	state   *SharedState
	loading bool
	errText string
}

func newPerformanceView(state *SharedState) *performanceView {
	return &performanceView{state: state, loading: true}
}

func (v *performanceView) ID() ViewID    { return ViewPerformance }
func (v *performanceView) Title() string { return "Performance" }

func (v *performanceView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *performanceView) Init() tea.Cmd {
	return v.loadData()
}

func (v *performanceView) loadData() tea.Cmd {
	store := v.state.App.Store
	return func() tea.Msg {
		ctx := context.Background()
		var first error
		if err := store.FetchStatistics(ctx); err != nil && first == nil {
			first = err
		}
		if err := store.FetchComposition(ctx); err != nil && first == nil {
			first = err
		}
		if err := store.FetchStatusRows(ctx); err != nil && first == nil {
			first = err
		}
		return performanceLoadedMsg{err: first}
	}
}

func (v *performanceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case performanceLoadedMsg:
		v.loading = false
		v.errText = ""
		if msg.err != nil {
			v.errText = msg.err.Error()
		}
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

func (v *performanceView) View() string {
	if v.loading {
		return "\n  " + formatter.StyleDim.Render("Loading...")
	}

	snap := v.state.App.Store.Snapshot().Performance
	var b strings.Builder
	b.WriteString("\n")
	if v.errText != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.errText) + "\n\n")
	}

	b.WriteString("  " + formatter.StyleHeader.Render("Monthly performance") + "\n")
	b.WriteString(indent(formatter.RenderMonthlyChart(snap.Monthly)))
	b.WriteString("\n  " + formatter.StyleHeader.Render("Interviewee composition") + "\n")
	b.WriteString(indent(formatter.RenderComposition(snap.Composition)))
	b.WriteString("\n  " + formatter.StyleHeader.Render("Interviewee status") + "\n")
	b.WriteString(indent(formatter.RenderStatusRows(snap.StatusRows)))
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
