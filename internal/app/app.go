package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bunkwise/internal/config"
	"github.com/abhisek/bunkwise/internal/router"
	"github.com/abhisek/bunkwise/internal/screen"
	"github.com/abhisek/bunkwise/internal/screens/calculator"
	"github.com/abhisek/bunkwise/internal/screens/help"
	"github.com/abhisek/bunkwise/internal/screens/welcome"
	"github.com/abhisek/bunkwise/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Config config.Config
	Logger *slog.Logger

	// Splash shows the welcome animation before the calculator.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel rooted at the calculator screen, or at
// the welcome screen when opts.Splash is set.
func newAppModel(opts Options) AppModel {
	calc := func() screen.Screen {
		return calculator.New(calculator.Options{
			Defaults: opts.Config.Defaults,
			Limits:   opts.Config.AttendanceLimits(),
			Debounce: opts.Config.UI.Debounce,
			Delay:    opts.Config.UI.Delay,
			Logger:   opts.Logger,
			Help:     func() screen.Screen { return help.New() },
		})
	}

	var root screen.Screen
	if opts.Splash {
		root = welcome.New(calc)
	} else {
		root = calc()
	}
	return AppModel{
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders the header, the active screen and the footer.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Error("program exited with error", "error", err)
		}
		return err
	}
	return nil
}
