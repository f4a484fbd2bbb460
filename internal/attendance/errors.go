package attendance

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUndefined is wrapped by InvalidInputError when a formula has no
// defined value for the given inputs.
var ErrUndefined = errors.New("result is undefined")

// InvalidInputError reports a missing, non-numeric or mathematically
// unusable input.
type InvalidInputError struct {
	Field  Field
	Value  string
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	msg := fmt.Sprintf("invalid %s", e.Field)
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// IsInvalidInput reports whether err is or wraps an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// AdjustedInputNotice records a saturating clamp applied during
// normalization. It is informational; the computation proceeds.
type AdjustedInputNotice struct {
	Field  Field   `json:"field"`
	From   float64 `json:"from"`
	To     float64 `json:"to"`
	Reason string  `json:"reason"`
}

// String formats the notice for display.
func (n AdjustedInputNotice) String() string {
	return fmt.Sprintf("%s adjusted from %s to %s: %s",
		n.Field.Label(), formatNumber(n.From), formatNumber(n.To), n.Reason)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
