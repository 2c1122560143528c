package formatter

import (
	"fmt"
	"strings"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

const barWidth = 30

// RenderMonthlyChart renders the trial/real score series as paired
// horizontal bars, one pair per month, scaled to the largest value.
func RenderMonthlyChart(monthly []domain.MonthlyPerformance) string {
	if len(monthly) == 0 {
		return StyleDim.Render("no performance data")
	}

	max := 0.0
	for _, m := range monthly {
		if m.Trial > max {
			max = m.Trial
		}
		if m.Real > max {
			max = m.Real
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, m := range monthly {
		b.WriteString(StyleBold.Render(monthName(m.Month)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  trial %s %s\n", bar(m.Trial, max, StyleBlue), fmtScore(m.Trial)))
		b.WriteString(fmt.Sprintf("  real  %s %s\n", bar(m.Real, max, StyleGreen), fmtScore(m.Real)))
	}
	b.WriteString("\n")
	b.WriteString(StyleBlue.Render("■ trial"))
	b.WriteString("  ")
	b.WriteString(StyleGreen.Render("■ real"))
	b.WriteString("\n")
	return b.String()
}

// RenderComposition renders the interviewee gender split as one line.
func RenderComposition(c domain.Composition) string {
	total := c.Male + c.Female
	if total == 0 {
		return StyleDim.Render("no interviewees")
	}
	return fmt.Sprintf("%s %d  %s %d  (total %d)",
		StyleBlue.Render("male"), c.Male,
		StylePurple.Render("female"), c.Female,
		total)
}

// RenderStatusRows renders the qualification table.
func RenderStatusRows(rows []domain.StatusRow) string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		status := StyleRed.Render(r.Status)
		if strings.EqualFold(r.Status, "Qualified") {
			status = StyleGreen.Render(r.Status)
		}
		out = append(out, []string{
			fmt.Sprintf("%d", r.ID), r.Name, fmtScore(r.AverageScore), status,
		})
	}
	return RenderTable([]string{"ID", "NAME", "AVG SCORE", "STATUS"}, out)
}

func bar(v, max float64, style interface{ Render(...string) string }) string {
	n := int(v / max * barWidth)
	if n < 0 {
		n = 0
	}
	if v > 0 && n == 0 {
		n = 1
	}
	return style.Render(strings.Repeat("█", n)) + StyleDim.Render(strings.Repeat("░", barWidth-n))
}

func fmtScore(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// monthName maps a numeric month from the statistics endpoint to a short
// label; anything unrecognized passes through as-is.
func monthName(m string) string {
	names := map[string]string{
		"1": "Jan", "2": "Feb", "3": "Mar", "4": "Apr",
		"5": "May", "6": "Jun", "7": "Jul", "8": "Aug",
		"9": "Sep", "10": "Oct", "11": "Nov", "12": "Dec",
	}
	if n, ok := names[m]; ok {
		return n
	}
	return m
}
