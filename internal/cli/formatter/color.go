package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/smartrecruiter/smartrec/internal/domain"
	"github.com/smartrecruiter/smartrec/internal/store"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// InvitationBadge renders a colored invitation status marker.
func InvitationBadge(status domain.InvitationStatus) string {
	switch status {
	case domain.InvitationAccepted:
		return StyleGreen.Render("● accepted")
	case domain.InvitationPending:
		return StyleYellow.Render("● pending")
	case domain.InvitationExpired:
		return StyleRed.Render("● expired")
	case domain.InvitationCompleted:
		return StyleBlue.Render("● completed")
	default:
		return StyleDim.Render("● " + string(status))
	}
}

// StatusLabel renders an operation lifecycle for inline display.
func StatusLabel(s store.Status) string {
	switch s {
	case store.StatusLoading:
		return StyleYellow.Render("loading…")
	case store.StatusFailed:
		return StyleRed.Render("failed")
	case store.StatusSucceeded:
		return StyleGreen.Render("ok")
	default:
		return StyleDim.Render("idle")
	}
}

// PublishedMark renders the assessment visibility flag.
func PublishedMark(published bool) string {
	if published {
		return StyleGreen.Render("published")
	}
	return StyleDim.Render("draft")
}

// ReadMark renders the notification read flag.
func ReadMark(read bool) string {
	if read {
		return StyleDim.Render("read")
	}
	return StyleYellow.Render("unread")
}
