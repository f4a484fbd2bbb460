package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bunkwise/internal/router"
	"github.com/abhisek/bunkwise/internal/screen"
	"github.com/abhisek/bunkwise/internal/ui/layout"
	"github.com/abhisek/bunkwise/internal/ui/theme"
)

// HelpScreen explains the calculations and key bindings.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

type entry struct {
	key  string
	desc string
}

var formulas = []entry{
	{"Current attendance", "attended / total × 100"},
	{"Minimum to attend", "⌈required × total / 100⌉"},
	{"Can bunk", "min(remaining, attended − minimum), at least 0"},
	{"Need to attend", "minimum − attended, when positive"},
	{"Good", "current ≥ required"},
	{"Almost there", "current ≥ 90% of required"},
}

var bindings = []entry{
	{"Tab / ↓ / Enter", "Next field"},
	{"Shift+Tab / ↑", "Previous field"},
	{"+ / − / ← / →", "Step the focused field"},
	{"0-9 .", "Type a value"},
	{"Ctrl+R", "Reset to defaults"},
	{"Esc / q", "Close help"},
	{"Ctrl+C", "Quit"},
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "q", "?", "esc":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(section("How it's calculated", formulas))
	b.WriteString("\n\n")
	b.WriteString(section("Keys", bindings))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Total lectures is always attended plus remaining lectures."))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func section(title string, entries []entry) string {
	keyWidth := 0
	for _, e := range entries {
		keyWidth = max(keyWidth, lipgloss.Width(e.key))
	}

	keyStyle := theme.Label.Width(keyWidth + 3)
	lines := []string{theme.Title.Render(title)}
	for _, e := range entries {
		lines = append(lines, keyStyle.Render(e.key)+theme.Body.Render(e.desc))
	}
	return strings.Join(lines, "\n")
}
