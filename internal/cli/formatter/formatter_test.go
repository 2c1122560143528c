package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartrecruiter/smartrec/internal/domain"
	"github.com/smartrecruiter/smartrec/internal/store"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{{"1", "Go Basics"}, {"42", "Systems"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Go Basics")
	assert.Contains(t, lines[3], "42")

	// Every row lines up with the header.
	w := lipgloss.Width(lines[0])
	for _, l := range lines[1:] {
		assert.Equal(t, w, lipgloss.Width(l))
	}
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRowPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestRenderMonthlyChart(t *testing.T) {
	out := RenderMonthlyChart([]domain.MonthlyPerformance{
		{Month: "1", Trial: 40, Real: 80},
		{Month: "2", Trial: 20, Real: 0},
	})
	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "Feb")
	assert.Contains(t, out, "trial")
	assert.Contains(t, out, "real")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "80")
}

func TestRenderMonthlyChart_Empty(t *testing.T) {
	assert.Contains(t, RenderMonthlyChart(nil), "no performance data")
}

func TestRenderMonthlyChart_NonNumericMonthPassesThrough(t *testing.T) {
	out := RenderMonthlyChart([]domain.MonthlyPerformance{{Month: "2024-07", Trial: 1, Real: 2}})
	assert.Contains(t, out, "2024-07")
}

func TestRenderComposition(t *testing.T) {
	out := RenderComposition(domain.Composition{Male: 3, Female: 2})
	assert.Contains(t, out, "male")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "female")
	assert.Contains(t, out, "(total 5)")
}

func TestRenderComposition_Empty(t *testing.T) {
	assert.Contains(t, RenderComposition(domain.Composition{}), "no interviewees")
}

func TestRenderStatusRows(t *testing.T) {
	out := RenderStatusRows([]domain.StatusRow{
		{ID: 1, Name: "Ada", AverageScore: 72.5, Status: "Qualified"},
		{ID: 2, Name: "Bo", AverageScore: 30, Status: "Not Qualified"},
	})
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "72.5")
	assert.Contains(t, out, "Qualified")
	assert.Contains(t, out, "Not Qualified")
}

func TestBadgesAndMarks(t *testing.T) {
	assert.Contains(t, InvitationBadge(domain.InvitationPending), "pending")
	assert.Contains(t, InvitationBadge(domain.InvitationAccepted), "accepted")
	assert.Contains(t, InvitationBadge(domain.InvitationStatus("odd")), "odd")

	assert.Contains(t, PublishedMark(true), "published")
	assert.Contains(t, PublishedMark(false), "draft")

	assert.Contains(t, ReadMark(true), "read")
	assert.Contains(t, ReadMark(false), "unread")

	assert.Contains(t, StatusLabel(store.StatusLoading), "loading")
	assert.Contains(t, StatusLabel(store.StatusFailed), "failed")
}
