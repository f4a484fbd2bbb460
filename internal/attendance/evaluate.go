package attendance

import (
	"math"
	"strconv"
)

// WarningRatio is the fraction of the required percentage above which a
// shortfall is a warning rather than danger.
const WarningRatio = 0.9

// Evaluate derives the attendance metrics for in. It is pure and
// deterministic and safe to call concurrently.
//
// Affordable absences are capped by the remaining lectures: the surplus
// above the minimum is never promised beyond lectures that are left.
func Evaluate(in NormalizedInputs) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	pct := 100 * float64(in.AttendedLectures) / float64(in.TotalLectures)
	minimum := MinimumToAttend(in.RequiredPercentage, in.TotalLectures)

	return Result{
		CurrentPercentage:     pct,
		MinimumToAttend:       minimum,
		MaxAffordableAbsences: max(0, min(in.RemainingLectures, in.AttendedLectures-minimum)),
		LecturesStillNeeded:   max(0, minimum-in.AttendedLectures),
		Status:                Classify(pct, in.RequiredPercentage),
	}, nil
}

// MinimumToAttend returns ceil(required% of total). Products within 1e-9 of
// an integer are treated as that integer so that, for example, 7% of 100 is
// 7 and not 8.
func MinimumToAttend(required float64, total int) int {
	exact := required * float64(total) / 100
	if r := math.Round(exact); math.Abs(exact-r) < 1e-9 {
		return int(r)
	}
	return int(math.Ceil(exact))
}

// Classify maps a current percentage onto a status.
func Classify(current, required float64) Status {
	switch {
	case current >= required:
		return StatusGood
	case current >= required*WarningRatio:
		return StatusWarning
	default:
		return StatusDanger
	}
}

func validate(in NormalizedInputs) error {
	switch {
	case in.TotalLectures <= 0:
		return &InvalidInputError{
			Field:  FieldTotal,
			Value:  strconv.Itoa(in.TotalLectures),
			Reason: "must be at least 1",
			Err:    ErrUndefined,
		}
	case in.AttendedLectures < 0 || in.AttendedLectures > in.TotalLectures:
		return &InvalidInputError{
			Field:  FieldAttended,
			Value:  strconv.Itoa(in.AttendedLectures),
			Reason: "must be between 0 and total lectures",
		}
	case in.RemainingLectures < 0:
		return &InvalidInputError{
			Field:  FieldRemaining,
			Value:  strconv.Itoa(in.RemainingLectures),
			Reason: "cannot be negative",
		}
	case math.IsNaN(in.RequiredPercentage) || math.IsInf(in.RequiredPercentage, 0):
		return &InvalidInputError{
			Field:  FieldRequired,
			Value:  formatNumber(in.RequiredPercentage),
			Reason: "not a finite number",
		}
	case in.RequiredPercentage < MinRequiredPercentage || in.RequiredPercentage > MaxRequiredPercentage:
		return &InvalidInputError{
			Field:  FieldRequired,
			Value:  formatNumber(in.RequiredPercentage),
			Reason: "must be between 1 and 100",
		}
	}
	return nil
}
