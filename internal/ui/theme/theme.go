package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bunkwise/internal/attendance"
)

// Color palette
var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Danger  = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	FocusedCard = Card.
			BorderForeground(Primary)
)

// StatusColor returns the accent color for an attendance status.
func StatusColor(s attendance.Status) color.Color {
	switch s {
	case attendance.StatusGood:
		return Success
	case attendance.StatusWarning:
		return Warning
	default:
		return Danger
	}
}

// StatusIcon returns a glyph for an attendance status.
func StatusIcon(s attendance.Status) string {
	switch s {
	case attendance.StatusGood:
		return "★"
	case attendance.StatusWarning:
		return "▲"
	default:
		return "●"
	}
}
