package components

import (
	"math"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bunkwise/internal/ui/theme"
)

// NumberInput is a labelled numeric field with stepper bounds. Only digits
// (and a decimal point when AllowDecimal is set) reach the underlying
// text input.
type NumberInput struct {
	Label        string
	Hint         string
	Min          float64
	Max          float64
	AllowDecimal bool
	Model        textinput.Model
}

// NewNumberInput creates an unfocused number input.
func NewNumberInput(label, hint string, allowDecimal bool) NumberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = minCharLimit

	return NumberInput{
		Label:        label,
		Hint:         hint,
		AllowDecimal: allowDecimal,
		Model:        ti,
	}
}

// Focus focuses the field and moves the cursor to the end.
func (n *NumberInput) Focus() tea.Cmd {
	n.Model.CursorEnd()
	return n.Model.Focus()
}

// Blur removes focus.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// Focused reports whether the field has focus.
func (n NumberInput) Focused() bool {
	return n.Model.Focused()
}

// SetBounds sets the stepper range and sizes the field so any value up to
// hi, plus one overflow digit, can be typed.
func (n *NumberInput) SetBounds(lo, hi float64) {
	n.Min = lo
	n.Max = hi
	n.Model.CharLimit = charLimit(hi, n.AllowDecimal)
}

// minCharLimit is the narrowest field width in characters.
const minCharLimit = 7

func charLimit(hi float64, allowDecimal bool) int {
	digits := len(strconv.FormatFloat(math.Trunc(math.Abs(hi)), 'f', 0, 64)) + 1
	if allowDecimal {
		digits += 4
	}
	return max(minCharLimit, digits)
}

// SetValue replaces the text with v.
func (n *NumberInput) SetValue(v float64) {
	n.Model.SetValue(FormatNumber(v))
	n.Model.CursorEnd()
}

// Text returns the raw text.
func (n NumberInput) Text() string {
	return n.Model.Value()
}

// Value parses the current text.
func (n NumberInput) Value() (float64, bool) {
	v, err := strconv.ParseFloat(n.Model.Value(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Step returns the current value moved by delta and kept within bounds.
// Unparseable text counts as zero.
func (n NumberInput) Step(delta float64) float64 {
	v, _ := n.Value()
	return n.clamp(v + delta)
}

// Settle returns the value the field should hold once editing ends: blank
// or invalid text becomes Min, and out-of-range values saturate.
func (n NumberInput) Settle() float64 {
	v, ok := n.Value()
	if !ok {
		return n.Min
	}
	return n.clamp(v)
}

func (n NumberInput) clamp(v float64) float64 {
	return math.Min(math.Max(v, n.Min), n.Max)
}

// Update filters key presses and forwards the rest to the text input.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !n.accepts(key[0]) {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

func (n NumberInput) accepts(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return n.AllowDecimal && c == '.'
}

// View renders the label, the field with its stepper hints, and the hint.
func (n NumberInput) View(width int) string {
	labelStyle := theme.Label
	border := theme.Border
	if n.Focused() {
		labelStyle = labelStyle.Foreground(theme.Primary)
		border = theme.Primary
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	minus, plus := dim.Render(" − "), dim.Render(" + ")
	if v, ok := n.Value(); ok {
		if v <= n.Min {
			minus = dim.Faint(true).Render(" − ")
		}
		if v >= n.Max {
			plus = dim.Faint(true).Render(" + ")
		}
	}

	fieldWidth := width - 2
	if fieldWidth < 12 {
		fieldWidth = 12
	}
	inner := fieldWidth - lipgloss.Width(minus) - lipgloss.Width(plus)
	field := lipgloss.NewStyle().
		Width(fieldWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(minus + lipgloss.PlaceHorizontal(inner, lipgloss.Center, n.Model.View()) + plus)

	out := labelStyle.Render(n.Label) + "\n" + field
	if n.Hint != "" {
		out += "\n" + theme.Hint.Render(n.Hint)
	}
	return out
}

// FormatNumber renders v without a trailing fractional zero.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
