package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/bunkwise/internal/attendance"
)

// Report bundles one evaluation for rendering.
type Report struct {
	Inputs   attendance.NormalizedInputs       `json:"inputs"`
	Result   attendance.Result                 `json:"result"`
	Headline string                            `json:"headline"`
	Advice   string                            `json:"advice"`
	Notices  []attendance.AdjustedInputNotice `json:"notices,omitempty"`
}

// Build assembles a Report.
func Build(in attendance.NormalizedInputs, res attendance.Result, notices []attendance.AdjustedInputNotice) Report {
	return Report{
		Inputs:   in,
		Result:   res,
		Headline: Headline(res.Status),
		Advice:   Advice(in, res),
		Notices:  notices,
	}
}

// Headline returns the one-line verdict for a status.
func Headline(s attendance.Status) string {
	switch s {
	case attendance.StatusGood:
		return "You're doing great!"
	case attendance.StatusWarning:
		return "Almost there!"
	default:
		return "You need to attend more classes!"
	}
}

// Advice tells the user what they can skip or still have to attend.
func Advice(in attendance.NormalizedInputs, res attendance.Result) string {
	if res.Status == attendance.StatusGood {
		return fmt.Sprintf("You can safely bunk %d more %s.",
			res.MaxAffordableAbsences, Lectures(res.MaxAffordableAbsences))
	}
	return fmt.Sprintf("You need to attend %d more %s to reach %s%%.",
		res.LecturesStillNeeded, Lectures(res.LecturesStillNeeded), Percent(in.RequiredPercentage))
}

// Lectures pluralizes "lecture" for n.
func Lectures(n int) string {
	if n == 1 {
		return "lecture"
	}
	return "lectures"
}

// Percent formats a required percentage without a trailing ".0".
func Percent(p float64) string {
	s := fmt.Sprintf("%.2f", p)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
