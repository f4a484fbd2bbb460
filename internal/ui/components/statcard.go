package components

import (
	"image/color"
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bunkwise/internal/ui/theme"
)

// StatCard shows a caption above a single highlighted number.
type StatCard struct {
	Caption string
	Value   int
	Accent  color.Color
}

// View renders the card at the given width.
func (c StatCard) View(width int) string {
	body := theme.Hint.Render(c.Caption) + "\n" +
		lipgloss.NewStyle().Foreground(c.Accent).Bold(true).Render(strconv.Itoa(c.Value))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(body)
}
