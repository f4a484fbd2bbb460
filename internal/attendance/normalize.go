package attendance

import (
	"fmt"
	"math"
)

// Bounds on the required percentage.
const (
	MinRequiredPercentage = 1
	MaxRequiredPercentage = 100
)

// Normalize clamps raw into a consistent input tuple.
//
// Out-of-range numbers saturate to the nearest bound and produce one notice
// per adjusted field; only NaN or infinite values are rejected. Attended and
// remaining lectures are primary. The supplied total only bounds attended
// lectures, and the normalized total is always attended + remaining.
func Normalize(raw RawInputs, limits Limits) (NormalizedInputs, []AdjustedInputNotice, error) {
	if err := checkFinite(raw); err != nil {
		return NormalizedInputs{}, nil, err
	}

	maxTotal := limits.maxTotal()
	var notices []AdjustedInputNotice
	note := func(f Field, from, to float64, reason string) {
		if from != to {
			notices = append(notices, AdjustedInputNotice{Field: f, From: from, To: to, Reason: reason})
		}
	}

	required := clampFloat(raw.RequiredPercentage, MinRequiredPercentage, MaxRequiredPercentage)
	note(FieldRequired, raw.RequiredPercentage, required,
		fmt.Sprintf("required percentage must be between %d and %d", MinRequiredPercentage, MaxRequiredPercentage))

	bound := clampCount(raw.TotalLectures, 1, maxTotal)

	attended := clampCount(raw.AttendedLectures, 0, bound)
	note(FieldAttended, raw.AttendedLectures, float64(attended),
		countReason(raw.AttendedLectures, "attended lectures cannot be negative",
			"attended lectures cannot exceed total lectures", bound))

	remaining := clampCount(raw.RemainingLectures, 0, maxTotal-attended)
	reason := countReason(raw.RemainingLectures, "remaining lectures cannot be negative",
		fmt.Sprintf("a course has at most %d lectures", maxTotal), maxTotal-attended)
	if attended+remaining == 0 {
		remaining = 1
		reason = "a course needs at least one lecture"
	}
	note(FieldRemaining, raw.RemainingLectures, float64(remaining), reason)

	total := attended + remaining
	switch {
	case raw.TotalLectures < 1 || raw.TotalLectures > float64(maxTotal):
		reason = fmt.Sprintf("total lectures must be between 1 and %d", maxTotal)
	case math.Trunc(raw.TotalLectures) == float64(total):
		reason = "lecture counts are whole numbers"
	default:
		reason = "total lectures is attended plus remaining lectures"
	}
	note(FieldTotal, raw.TotalLectures, float64(total), reason)

	return NormalizedInputs{
		TotalLectures:      total,
		AttendedLectures:   attended,
		RemainingLectures:  remaining,
		RequiredPercentage: required,
	}, notices, nil
}

// Apply edits a single field of current and renormalizes.
//
// Editing total is translated into remaining = total - attended, so exactly
// one derived value changes per edit. The returned notices cover the edited
// field and any clamp of attended lectures; the recomputed total of an
// attended or remaining edit is expected and is not reported.
func Apply(current NormalizedInputs, field Field, value float64, limits Limits) (NormalizedInputs, []AdjustedInputNotice, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return current, nil, &InvalidInputError{Field: field, Value: formatNumber(value), Reason: "not a finite number"}
	}

	raw := current.Raw()
	switch field {
	case FieldTotal:
		raw.TotalLectures = value
		raw.RemainingLectures = math.Max(0, math.Trunc(value)-raw.AttendedLectures)
	case FieldAttended:
		raw.AttendedLectures = value
	case FieldRemaining:
		raw.RemainingLectures = value
	case FieldRequired:
		raw.RequiredPercentage = value
	default:
		return current, nil, &InvalidInputError{Field: field, Reason: "unknown field"}
	}

	next, notices, err := Normalize(raw, limits)
	if err != nil {
		return current, nil, err
	}

	kept := notices[:0]
	for _, n := range notices {
		if n.Field == field || n.Field == FieldAttended {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	return next, kept, nil
}

func checkFinite(raw RawInputs) error {
	for _, f := range AllFields {
		v := raw.Get(f)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidInputError{Field: f, Value: formatNumber(v), Reason: "not a finite number"}
		}
	}
	return nil
}

// clampCount truncates v toward zero and saturates it into [lo, hi].
func clampCount(v float64, lo, hi int) int {
	v = math.Trunc(v)
	if v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func countReason(v float64, low, high string, hi int) string {
	switch {
	case v < 0:
		return low
	case math.Trunc(v) > float64(hi):
		return high
	default:
		return "lecture counts are whole numbers"
	}
}
