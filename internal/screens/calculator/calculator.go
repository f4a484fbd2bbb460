package calculator

import (
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bunkwise/internal/attendance"
	"github.com/abhisek/bunkwise/internal/router"
	"github.com/abhisek/bunkwise/internal/screen"
	"github.com/abhisek/bunkwise/internal/ui/components"
	"github.com/abhisek/bunkwise/internal/ui/layout"
)

const toastDuration = 3 * time.Second

// Options configures a CalculatorScreen.
type Options struct {
	// Defaults are the initial form values. They are normalized on entry.
	Defaults attendance.NormalizedInputs
	Limits   attendance.Limits

	// Debounce is the quiet period after an edit before recalculating.
	Debounce time.Duration

	// Delay is an artificial pause, shown as a loading state, between
	// scheduling an evaluation and showing its result.
	Delay time.Duration

	Logger *slog.Logger

	// Help builds the screen pushed by "?". Nil disables it.
	Help func() screen.Screen
}

type recalcMsg struct {
	seq int
}

type resultMsg struct {
	seq    int
	inputs attendance.NormalizedInputs
	result attendance.Result
	err    error
}

type toastExpiredMsg struct {
	id int
}

// CalculatorScreen is the attendance form and its results panel.
type CalculatorScreen struct {
	opts Options
	log  *slog.Logger

	inputs attendance.NormalizedInputs
	fields []components.NumberInput
	focus  int

	// base is the state typing started from; editing is set until the
	// focused field is committed.
	base    attendance.NormalizedInputs
	editing bool

	// seq counts edits; results and debounce ticks from older edits are
	// dropped.
	seq     int
	loading bool
	result  *attendance.Result
	shown   attendance.NormalizedInputs
	err     error

	toast   string
	toastID int
}

var _ screen.Screen = (*CalculatorScreen)(nil)
var _ screen.KeyHintProvider = (*CalculatorScreen)(nil)

// New creates a CalculatorScreen.
func New(opts Options) *CalculatorScreen {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &CalculatorScreen{
		opts: opts,
		log:  log,
		fields: []components.NumberInput{
			components.NewNumberInput(attendance.FieldTotal.Label(), "Total number of lectures in the course", false),
			components.NewNumberInput(attendance.FieldAttended.Label(), "Number of lectures you've attended so far", false),
			components.NewNumberInput(attendance.FieldRemaining.Label(), "Number of remaining lectures in the course", false),
			components.NewNumberInput(attendance.FieldRequired.Label(), "Minimum attendance percentage required", true),
		},
		focus: int(attendance.FieldAttended),
	}

	in, notices, err := attendance.Normalize(opts.Defaults.Raw(), opts.Limits)
	if err != nil {
		log.Warn("invalid default inputs", "error", err)
		in, _, _ = attendance.Normalize(attendance.RawInputs{}, opts.Limits)
	}
	s.inputs = in
	if len(notices) > 0 {
		s.toast = noticeText(notices)
	}
	s.syncFields(false)
	return s
}

func (s *CalculatorScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.fields[s.focus].Focus(), s.scheduleRecalc()}
	if s.toast != "" {
		cmds = append(cmds, s.expireToast())
	}
	return tea.Batch(cmds...)
}

func (s *CalculatorScreen) Title() string {
	return "Attendance Calculator"
}

func (s *CalculatorScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "+/-", Description: "Adjust"},
		{Key: "Ctrl+R", Description: "Reset"},
	}
	if s.opts.Help != nil {
		hints = append(hints, layout.KeyHint{Key: "?", Description: "Help"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Inputs returns the current normalized inputs.
func (s *CalculatorScreen) Inputs() attendance.NormalizedInputs {
	return s.inputs
}

// Result returns the latest result, or nil before the first evaluation.
func (s *CalculatorScreen) Result() *attendance.Result {
	return s.result
}

// Loading reports whether an evaluation is pending behind the delay.
func (s *CalculatorScreen) Loading() bool {
	return s.loading
}

// Toast returns the notification line currently shown.
func (s *CalculatorScreen) Toast() string {
	return s.toast
}

func (s *CalculatorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recalcMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.loading = s.opts.Delay > 0
		return s, s.evaluate(msg.seq, s.inputs)

	case resultMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.handleResult(msg)
		return s, nil

	case toastExpiredMsg:
		if msg.id == s.toastID {
			s.toast = ""
		}
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *CalculatorScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down", "enter":
		return s.moveFocus(1)
	case "shift+tab", "up":
		return s.moveFocus(-1)
	case "+", "=", "right":
		return s.step(1)
	case "-", "_", "left":
		return s.step(-1)
	case "ctrl+r":
		return s.reset()
	case "?":
		if s.opts.Help == nil {
			return nil
		}
		help := s.opts.Help()
		return func() tea.Msg { return router.PushScreenMsg{Screen: help} }
	}

	before := s.fields[s.focus].Text()
	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	if s.fields[s.focus].Text() == before {
		return cmd
	}
	return tea.Batch(cmd, s.typed())
}

// typed applies the focused field's text while the user is still editing.
// Each keystroke is applied to the inputs as they were when typing began,
// so intermediate text never clamps the other fields. Total is only applied
// once the field is left.
func (s *CalculatorScreen) typed() tea.Cmd {
	if !s.editing {
		s.base = s.inputs
		s.editing = true
	}

	f := s.field()
	v, ok := s.fields[s.focus].Value()
	b := s.bounds(s.base)[s.focus]
	if !ok || f == attendance.FieldTotal || v < b[0] || v > b[1] {
		return nil
	}
	return s.applyTo(s.base, f, v, true)
}

// commit applies the focused field's text once editing ends. Blank or
// invalid text becomes the field minimum; out-of-range values go through
// the normalizer so the user is told about the clamp.
func (s *CalculatorScreen) commit() tea.Cmd {
	from := s.inputs
	if s.editing {
		from = s.base
		s.editing = false
	}

	f := s.field()
	v, ok := s.fields[s.focus].Value()
	if !ok {
		v = s.fields[s.focus].Settle()
	}
	if v == s.inputs.Get(f) {
		s.syncFields(false)
		return nil
	}
	return s.applyTo(from, f, v, false)
}

func (s *CalculatorScreen) moveFocus(delta int) tea.Cmd {
	cmd := s.commit()
	s.fields[s.focus].Blur()
	n := len(s.fields)
	s.focus = (s.focus + delta + n) % n
	return tea.Batch(cmd, s.fields[s.focus].Focus())
}

func (s *CalculatorScreen) step(delta float64) tea.Cmd {
	s.editing = false
	return s.apply(s.field(), s.fields[s.focus].Step(delta), false)
}

func (s *CalculatorScreen) reset() tea.Cmd {
	in, _, err := attendance.Normalize(s.opts.Defaults.Raw(), s.opts.Limits)
	if err != nil {
		return nil
	}
	s.inputs = in
	s.editing = false
	s.syncFields(false)
	s.log.Info("inputs reset to defaults")
	return tea.Batch(s.scheduleRecalc(), s.showToast("Reset to defaults"))
}

func (s *CalculatorScreen) apply(f attendance.Field, v float64, keepFocused bool) tea.Cmd {
	return s.applyTo(s.inputs, f, v, keepFocused)
}

// applyTo routes a single-field edit of from through the normalizer. When
// keepFocused is set the focused field's text is left as typed.
func (s *CalculatorScreen) applyTo(from attendance.NormalizedInputs, f attendance.Field, v float64, keepFocused bool) tea.Cmd {
	next, notices, err := attendance.Apply(from, f, v, s.opts.Limits)
	if err != nil {
		s.log.Warn("edit rejected", "field", f.String(), "error", err)
		s.syncFields(false)
		return s.showToast(err.Error())
	}

	changed := next != s.inputs
	s.inputs = next
	s.syncFields(keepFocused && len(notices) == 0)

	var cmds []tea.Cmd
	if changed {
		s.log.Debug("inputs changed", "field", f.String(), "value", v)
		cmds = append(cmds, s.scheduleRecalc())
	}
	if len(notices) > 0 {
		for _, n := range notices {
			s.log.Info("input adjusted", "field", n.Field.String(), "from", n.From, "to", n.To, "reason", n.Reason)
		}
		cmds = append(cmds, s.showToast(noticeText(notices)))
	}
	return tea.Batch(cmds...)
}

// syncFields refreshes every field's bounds and text from the inputs.
// While a field is being typed into, bounds come from the inputs as they
// were when typing began.
func (s *CalculatorScreen) syncFields(keepFocused bool) {
	ref := s.inputs
	if s.editing {
		ref = s.base
	}
	bounds := s.bounds(ref)

	for i, f := range attendance.AllFields {
		s.fields[i].SetBounds(bounds[i][0], bounds[i][1])
		if keepFocused && i == s.focus {
			continue
		}
		s.fields[i].SetValue(s.inputs.Get(f))
	}
}

// bounds returns the [min, max] of each field, in AllFields order.
func (s *CalculatorScreen) bounds(in attendance.NormalizedInputs) [][2]float64 {
	maxTotal := float64(s.opts.Limits.MaxTotalLectures)
	if maxTotal < 1 {
		maxTotal = attendance.DefaultMaxTotalLectures
	}
	return [][2]float64{
		{1, maxTotal},
		{0, float64(in.TotalLectures)},
		{0, maxTotal - float64(in.AttendedLectures)},
		{attendance.MinRequiredPercentage, attendance.MaxRequiredPercentage},
	}
}

func (s *CalculatorScreen) field() attendance.Field {
	return attendance.AllFields[s.focus]
}

func (s *CalculatorScreen) scheduleRecalc() tea.Cmd {
	s.seq++
	seq := s.seq
	if s.opts.Debounce <= 0 {
		return func() tea.Msg { return recalcMsg{seq: seq} }
	}
	return tea.Tick(s.opts.Debounce, func(time.Time) tea.Msg {
		return recalcMsg{seq: seq}
	})
}

// evaluate wraps the synchronous evaluator in the optional delay.
func (s *CalculatorScreen) evaluate(seq int, in attendance.NormalizedInputs) tea.Cmd {
	run := func() tea.Msg {
		res, err := attendance.Evaluate(in)
		return resultMsg{seq: seq, inputs: in, result: res, err: err}
	}
	if s.opts.Delay <= 0 {
		return run
	}
	return tea.Tick(s.opts.Delay, func(time.Time) tea.Msg { return run() })
}

func (s *CalculatorScreen) handleResult(msg resultMsg) {
	s.loading = false
	if msg.err != nil {
		s.log.Error("evaluation failed", "error", msg.err)
		s.err = msg.err
		s.result = nil
		return
	}

	res := msg.result
	s.err = nil
	s.result = &res
	s.shown = msg.inputs
	s.log.Debug("evaluated",
		"percentage", res.CurrentPercentage,
		"can_bunk", res.MaxAffordableAbsences,
		"need", res.LecturesStillNeeded,
		"status", res.Status.String())
}

func (s *CalculatorScreen) showToast(text string) tea.Cmd {
	s.toast = text
	return s.expireToast()
}

func (s *CalculatorScreen) expireToast() tea.Cmd {
	s.toastID++
	id := s.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func noticeText(notices []attendance.AdjustedInputNotice) string {
	reasons := make([]string, 0, len(notices))
	for _, n := range notices {
		r := n.Reason
		if r != "" {
			r = strings.ToUpper(r[:1]) + r[1:]
		}
		reasons = append(reasons, r+".")
	}
	return "Attendance adjusted: " + strings.Join(reasons, " ")
}
