package calculator

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bunkwise/internal/report"
	"github.com/abhisek/bunkwise/internal/ui/components"
	"github.com/abhisek/bunkwise/internal/ui/layout"
	"github.com/abhisek/bunkwise/internal/ui/theme"
)

// roomyHeight is the content height needed for the full two-column layout.
const roomyHeight = 28

func (s *CalculatorScreen) View(width, height int) string {
	roomy := layout.IsSplitWidth(width) && height >= roomyHeight

	var b strings.Builder
	if s.toast != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(s.toast))
		b.WriteString("\n")
	}

	if roomy {
		col := (width - 2) / 2
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			s.renderForm(col, true),
			"  ",
			s.renderResults(col, true)))
		return b.String()
	}

	b.WriteString(s.renderForm(width, false))
	b.WriteString("\n")
	b.WriteString(s.renderResults(width, false))
	return b.String()
}

func (s *CalculatorScreen) renderForm(width int, full bool) string {
	if full {
		inner := width - 6
		parts := make([]string, 0, len(s.fields))
		for _, f := range s.fields {
			parts = append(parts, f.View(inner))
		}
		return theme.Card.Width(width).Render(strings.Join(parts, "\n"))
	}

	half := (width - 8) / 2
	views := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		f.Hint = ""
		views = append(views, f.View(half))
	}
	rows := lipgloss.JoinHorizontal(lipgloss.Top, views[0], "  ", views[1]) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, views[2], "  ", views[3])

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(rows)
}

func (s *CalculatorScreen) renderResults(width int, full bool) string {
	box := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	if full {
		box = box.Padding(1, 2)
	}
	inner := width - 6

	switch {
	case s.loading:
		return box.Render(theme.Hint.Render("Calculating…"))
	case s.err != nil:
		return box.BorderForeground(theme.Danger).Render(
			lipgloss.NewStyle().Foreground(theme.Danger).Render("Calculation error: " + s.err.Error()))
	case s.result == nil:
		return box.Render(theme.Hint.Render("Calculating…"))
	}

	res := *s.result
	in := s.shown
	accent := theme.StatusColor(res.Status)
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	box = box.BorderForeground(accent)

	var lines []string
	lines = append(lines,
		accentStyle.Render(theme.StatusIcon(res.Status)+" "+report.Headline(res.Status)),
		theme.Hint.Render(report.Advice(in, res)),
	)
	if full {
		lines = append(lines, "")
	}

	lines = append(lines,
		spread(inner, theme.Label.Render("Current Attendance"), accentStyle.Render(fmt.Sprintf("%.1f%%", res.CurrentPercentage))),
		components.NewProgressBar("", res.ThresholdProgress(in.RequiredPercentage), false, inner).WithFill(accent).View(),
	)

	needColor := theme.Success
	if res.LecturesStillNeeded > 0 {
		needColor = theme.Danger
	}

	if !full {
		lines = append(lines, fmt.Sprintf("%s %s    %s %s    %s",
			theme.Hint.Render("Can bunk"), accentStyle.Render(fmt.Sprint(res.MaxAffordableAbsences)),
			theme.Hint.Render("Need to attend"), lipgloss.NewStyle().Foreground(needColor).Bold(true).Render(fmt.Sprint(res.LecturesStillNeeded)),
			theme.Hint.Render("Required "+report.Percent(in.RequiredPercentage)+"%")))
		return box.Render(strings.Join(lines, "\n"))
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines = append(lines,
		spread(inner, dim.Render("0%"), dim.Render("Required: "+report.Percent(in.RequiredPercentage)+"%"), dim.Render("100%")),
		"",
	)

	cardWidth := (inner - 2) / 2
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
		components.StatCard{Caption: "Can Bunk", Value: res.MaxAffordableAbsences, Accent: accent}.View(cardWidth),
		"  ",
		components.StatCard{Caption: "Need to Attend", Value: res.LecturesStillNeeded, Accent: needColor}.View(cardWidth),
	))

	return box.Render(strings.Join(lines, "\n"))
}

// spread lays items out across width with equal gaps between them.
func spread(width int, items ...string) string {
	if len(items) == 1 {
		return items[0]
	}
	used := 0
	for _, it := range items {
		used += lipgloss.Width(it)
	}
	gaps := len(items) - 1
	space := width - used
	if space < gaps {
		space = gaps
	}

	var b strings.Builder
	for i, it := range items {
		b.WriteString(it)
		if i < gaps {
			n := space / gaps
			if i < space%gaps {
				n++
			}
			b.WriteString(strings.Repeat(" ", n))
		}
	}
	return b.String()
}
