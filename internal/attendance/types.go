package attendance

import "fmt"

// Field identifies one of the four calculator inputs.
type Field int

const (
	FieldTotal Field = iota
	FieldAttended
	FieldRemaining
	FieldRequired
)

// AllFields lists the inputs in form order.
var AllFields = []Field{FieldTotal, FieldAttended, FieldRemaining, FieldRequired}

// String returns the short identifier used in flags, config and JSON.
func (f Field) String() string {
	switch f {
	case FieldTotal:
		return "total"
	case FieldAttended:
		return "attended"
	case FieldRemaining:
		return "remaining"
	case FieldRequired:
		return "required"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// MarshalText encodes the field by its short identifier.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes a short identifier.
func (f *Field) UnmarshalText(b []byte) error {
	v, err := ParseField(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseField resolves a short identifier such as "attended".
func ParseField(s string) (Field, error) {
	for _, f := range AllFields {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

// Label returns the human-readable field name.
func (f Field) Label() string {
	switch f {
	case FieldTotal:
		return "Total Lectures"
	case FieldAttended:
		return "Attended Lectures"
	case FieldRemaining:
		return "Remaining Lectures"
	case FieldRequired:
		return "Required Attendance (%)"
	default:
		return f.String()
	}
}

// Status classifies the current percentage against the requirement.
type Status int

const (
	StatusGood Status = iota
	StatusWarning
	StatusDanger
)

func (s Status) String() string {
	switch s {
	case StatusGood:
		return "good"
	case StatusWarning:
		return "warning"
	case StatusDanger:
		return "danger"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "good":
		*s = StatusGood
	case "warning":
		*s = StatusWarning
	case "danger":
		*s = StatusDanger
	default:
		return fmt.Errorf("unknown status %q", string(b))
	}
	return nil
}

// RawInputs holds caller-supplied values before normalization.
type RawInputs struct {
	TotalLectures      float64
	AttendedLectures   float64
	RemainingLectures  float64
	RequiredPercentage float64
}

// Get returns the raw value of f.
func (r RawInputs) Get(f Field) float64 {
	switch f {
	case FieldTotal:
		return r.TotalLectures
	case FieldAttended:
		return r.AttendedLectures
	case FieldRemaining:
		return r.RemainingLectures
	default:
		return r.RequiredPercentage
	}
}

// NormalizedInputs is a constraint-satisfying input tuple. Values produced
// by Normalize always satisfy:
//
//	TotalLectures >= 1
//	0 <= AttendedLectures <= TotalLectures
//	RemainingLectures == TotalLectures - AttendedLectures
//	1 <= RequiredPercentage <= 100
type NormalizedInputs struct {
	TotalLectures      int     `json:"total_lectures" yaml:"total_lectures"`
	AttendedLectures   int     `json:"attended_lectures" yaml:"attended_lectures"`
	RemainingLectures  int     `json:"remaining_lectures" yaml:"remaining_lectures"`
	RequiredPercentage float64 `json:"required_percentage" yaml:"required_percentage"`
}

// Raw converts n back into RawInputs.
func (n NormalizedInputs) Raw() RawInputs {
	return RawInputs{
		TotalLectures:      float64(n.TotalLectures),
		AttendedLectures:   float64(n.AttendedLectures),
		RemainingLectures:  float64(n.RemainingLectures),
		RequiredPercentage: n.RequiredPercentage,
	}
}

// Get returns the value of f as a float.
func (n NormalizedInputs) Get(f Field) float64 {
	return n.Raw().Get(f)
}

// Result is the outcome of one evaluation.
type Result struct {
	CurrentPercentage     float64 `json:"current_percentage"`
	MinimumToAttend       int     `json:"minimum_to_attend"`
	MaxAffordableAbsences int     `json:"max_affordable_absences"`
	LecturesStillNeeded   int     `json:"lectures_still_needed"`
	Status                Status  `json:"status"`
}

// ThresholdProgress returns how far the current percentage has come toward
// required, as a fraction in [0, 1].
func (r Result) ThresholdProgress(required float64) float64 {
	if required <= 0 {
		return 1
	}
	p := r.CurrentPercentage / required
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Limits bounds the inputs a normalizer accepts.
type Limits struct {
	// MaxTotalLectures caps the course length. Attended plus remaining
	// lectures never exceed it.
	MaxTotalLectures int
}

// DefaultMaxTotalLectures is the course-length cap used when none is configured.
const DefaultMaxTotalLectures = 500

// DefaultLimits returns the standard limits.
func DefaultLimits() Limits {
	return Limits{MaxTotalLectures: DefaultMaxTotalLectures}
}

func (l Limits) maxTotal() int {
	if l.MaxTotalLectures < 1 {
		return DefaultMaxTotalLectures
	}
	return l.MaxTotalLectures
}
