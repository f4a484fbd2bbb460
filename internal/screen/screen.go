package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bunkwise/internal/ui/layout"
)

// Screen is one page of the TUI.
type Screen interface {
	// Init returns the command to run when the screen opens.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
