package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects an output renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat resolves a --format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be text, json or markdown", s)
	}
}

// Write renders r in the given format.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatMarkdown:
		return WriteMarkdown(w, r)
	default:
		return WriteText(w, r)
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteText writes a plain-text summary. Notices are not included; the
// caller decides where those go.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Headline)
	fmt.Fprintf(&b, "%s\n\n", r.Advice)
	fmt.Fprintf(&b, "Current attendance: %.1f%% (required %s%%)\n", r.Result.CurrentPercentage, Percent(r.Inputs.RequiredPercentage))
	fmt.Fprintf(&b, "Lectures: %d attended, %d remaining, %d total\n",
		r.Inputs.AttendedLectures, r.Inputs.RemainingLectures, r.Inputs.TotalLectures)
	fmt.Fprintf(&b, "Minimum to attend: %d\n", r.Result.MinimumToAttend)
	fmt.Fprintf(&b, "Can bunk: %d\n", r.Result.MaxAffordableAbsences)
	fmt.Fprintf(&b, "Need to attend: %d\n", r.Result.LecturesStillNeeded)
	fmt.Fprintf(&b, "Status: %s\n", r.Result.Status)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMarkdown writes r as a Markdown document.
func WriteMarkdown(w io.Writer, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Attendance\n\n")
	fmt.Fprintf(&b, "**%s** %s\n\n", r.Headline, r.Advice)
	fmt.Fprintf(&b, "| Total | Attended | Remaining | Required | Current | Can bunk | Need to attend | Status |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %s%% | %.1f%% | %d | %d | %s |\n",
		r.Inputs.TotalLectures, r.Inputs.AttendedLectures, r.Inputs.RemainingLectures,
		Percent(r.Inputs.RequiredPercentage), r.Result.CurrentPercentage,
		r.Result.MaxAffordableAbsences, r.Result.LecturesStillNeeded, r.Result.Status)

	if len(r.Notices) > 0 {
		fmt.Fprintf(&b, "\n## Adjusted inputs\n")
		for _, n := range r.Notices {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
