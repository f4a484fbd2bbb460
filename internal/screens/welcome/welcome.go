package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bunkwise/internal/router"
	"github.com/abhisek/bunkwise/internal/screen"
	"github.com/abhisek/bunkwise/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	stripEnd     = 1000 * time.Millisecond
	totalDur     = 2000 * time.Millisecond

	stripLength = 10
)

// bunked marks the strip cells drawn as skipped lectures.
var bunked = map[int]bool{6: true, 9: true}

type tickMsg time.Time

// WelcomeScreen fills a strip of lectures, shows the banner, and then hands
// over to the next screen. Any key skips ahead.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that is replaced by the screen next builds.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// filled returns how many lectures of the strip are drawn.
func (w *WelcomeScreen) filled() int {
	n := int(w.elapsed * stripLength / stripEnd)
	return min(n, stripLength)
}

func (w *WelcomeScreen) View(width, height int) string {
	attended := lipgloss.NewStyle().Foreground(theme.Success).Render("■")
	skipped := lipgloss.NewStyle().Foreground(theme.Warning).Render("□")
	pending := lipgloss.NewStyle().Foreground(theme.Border).Render("·")

	cells := make([]string, stripLength)
	for i := range cells {
		switch {
		case i >= w.filled():
			cells[i] = pending
		case bunked[i]:
			cells[i] = skipped
		default:
			cells[i] = attended
		}
	}
	sections := []string{strings.Join(cells, " ")}

	if w.elapsed >= stripEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Know how many lectures you can skip."),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
