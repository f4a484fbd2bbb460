package attendance

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue converts the text of a single field into a number. Blank,
// non-numeric and non-finite text is rejected.
func ParseValue(f Field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &InvalidInputError{Field: f, Reason: "missing value"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InvalidInputError{Field: f, Value: text, Reason: "not a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidInputError{Field: f, Value: text, Reason: "not a finite number"}
	}
	return v, nil
}

// ParseRaw converts text for all four fields into RawInputs. Every field
// is required.
func ParseRaw(values map[Field]string) (RawInputs, error) {
	var raw RawInputs
	for _, f := range AllFields {
		text, ok := values[f]
		if !ok {
			return RawInputs{}, &InvalidInputError{Field: f, Reason: "missing value"}
		}
		v, err := ParseValue(f, text)
		if err != nil {
			return RawInputs{}, err
		}
		switch f {
		case FieldTotal:
			raw.TotalLectures = v
		case FieldAttended:
			raw.AttendedLectures = v
		case FieldRemaining:
			raw.RemainingLectures = v
		case FieldRequired:
			raw.RequiredPercentage = v
		}
	}
	return raw, nil
}
