package attendance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConsistentInputUnchanged(t *testing.T) {
	raw := RawInputs{TotalLectures: 100, AttendedLectures: 75, RemainingLectures: 25, RequiredPercentage: 75}

	got, notices, err := Normalize(raw, DefaultLimits())
	require.NoError(t, err)
	assert.Empty(t, notices)
	assert.Equal(t, NormalizedInputs{
		TotalLectures:      100,
		AttendedLectures:   75,
		RemainingLectures:  25,
		RequiredPercentage: 75,
	}, got)
}

func TestNormalizeClampsAttendedToTotal(t *testing.T) {
	raw := RawInputs{TotalLectures: 100, AttendedLectures: 120, RemainingLectures: 0, RequiredPercentage: 75}

	got, notices, err := Normalize(raw, DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, 100, got.AttendedLectures)
	assert.Equal(t, 100, got.TotalLectures)
	assert.Equal(t, 0, got.RemainingLectures)

	require.Len(t, notices, 1)
	assert.Equal(t, FieldAttended, notices[0].Field)
	assert.Equal(t, 120.0, notices[0].From)
	assert.Equal(t, 100.0, notices[0].To)
	assert.Equal(t, "attended lectures cannot exceed total lectures", notices[0].Reason)

	res, err := Evaluate(got)
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.CurrentPercentage)
	assert.Equal(t, StatusGood, res.Status)
}

func TestNormalizeSaturates(t *testing.T) {
	tests := []struct {
		name        string
		raw         RawInputs
		want        NormalizedInputs
		wantNotices []Field
	}{
		{
			name:        "required above 100",
			raw:         RawInputs{TotalLectures: 10, AttendedLectures: 5, RemainingLectures: 5, RequiredPercentage: 140},
			want:        NormalizedInputs{TotalLectures: 10, AttendedLectures: 5, RemainingLectures: 5, RequiredPercentage: 100},
			wantNotices: []Field{FieldRequired},
		},
		{
			name:        "required below 1",
			raw:         RawInputs{TotalLectures: 10, AttendedLectures: 5, RemainingLectures: 5, RequiredPercentage: -20},
			want:        NormalizedInputs{TotalLectures: 10, AttendedLectures: 5, RemainingLectures: 5, RequiredPercentage: 1},
			wantNotices: []Field{FieldRequired},
		},
		{
			name:        "negative attended",
			raw:         RawInputs{TotalLectures: 10, AttendedLectures: -4, RemainingLectures: 10, RequiredPercentage: 75},
			want:        NormalizedInputs{TotalLectures: 10, AttendedLectures: 0, RemainingLectures: 10, RequiredPercentage: 75},
			wantNotices: []Field{FieldAttended},
		},
		{
			name:        "negative remaining derives total",
			raw:         RawInputs{TotalLectures: 10, AttendedLectures: 6, RemainingLectures: -2, RequiredPercentage: 75},
			want:        NormalizedInputs{TotalLectures: 6, AttendedLectures: 6, RemainingLectures: 0, RequiredPercentage: 75},
			wantNotices: []Field{FieldRemaining, FieldTotal},
		},
		{
			name:        "empty course gets one lecture",
			raw:         RawInputs{TotalLectures: 0, AttendedLectures: 0, RemainingLectures: 0, RequiredPercentage: 75},
			want:        NormalizedInputs{TotalLectures: 1, AttendedLectures: 0, RemainingLectures: 1, RequiredPercentage: 75},
			wantNotices: []Field{FieldRemaining, FieldTotal},
		},
		{
			name:        "remaining capped by course length",
			raw:         RawInputs{TotalLectures: 100, AttendedLectures: 100, RemainingLectures: 1000, RequiredPercentage: 75},
			want:        NormalizedInputs{TotalLectures: 500, AttendedLectures: 100, RemainingLectures: 400, RequiredPercentage: 75},
			wantNotices: []Field{FieldRemaining, FieldTotal},
		},
		{
			name:        "fractional counts truncate",
			raw:         RawInputs{TotalLectures: 10.9, AttendedLectures: 4.7, RemainingLectures: 6.2, RequiredPercentage: 72.5},
			want:        NormalizedInputs{TotalLectures: 10, AttendedLectures: 4, RemainingLectures: 6, RequiredPercentage: 72.5},
			wantNotices: []Field{FieldAttended, FieldRemaining, FieldTotal},
		},
		{
			name:        "huge values saturate",
			raw:         RawInputs{TotalLectures: 1e300, AttendedLectures: 1e300, RemainingLectures: 1e300, RequiredPercentage: 1e300},
			want:        NormalizedInputs{TotalLectures: 500, AttendedLectures: 500, RemainingLectures: 0, RequiredPercentage: 100},
			wantNotices: []Field{FieldRequired, FieldAttended, FieldRemaining, FieldTotal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, notices, err := Normalize(tt.raw, DefaultLimits())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			var fields []Field
			for _, n := range notices {
				fields = append(fields, n.Field)
				assert.NotEmpty(t, n.Reason)
				assert.NotEqual(t, n.From, n.To)
			}
			assert.Equal(t, tt.wantNotices, fields)
		})
	}
}

func TestNormalizeRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		raw   RawInputs
		field Field
	}{
		{"nan total", RawInputs{TotalLectures: math.NaN(), RequiredPercentage: 75}, FieldTotal},
		{"inf attended", RawInputs{TotalLectures: 10, AttendedLectures: math.Inf(1), RequiredPercentage: 75}, FieldAttended},
		{"-inf remaining", RawInputs{TotalLectures: 10, RemainingLectures: math.Inf(-1), RequiredPercentage: 75}, FieldRemaining},
		{"nan required", RawInputs{TotalLectures: 10, RequiredPercentage: math.NaN()}, FieldRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Normalize(tt.raw, DefaultLimits())
			var inv *InvalidInputError
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.field, inv.Field)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	values := []float64{-50, -1, -0.5, 0, 0.5, 1, 2.7, 25, 75, 99.9, 100, 120, 499, 500, 501, 1e6}
	limits := Limits{MaxTotalLectures: 200}

	for _, total := range values {
		for _, attended := range values {
			for _, remaining := range values {
				for _, req := range []float64{-5, 0, 1, 62.5, 75, 100, 250} {
					raw := RawInputs{
						TotalLectures:      total,
						AttendedLectures:   attended,
						RemainingLectures:  remaining,
						RequiredPercentage: req,
					}
					once, _, err := Normalize(raw, limits)
					require.NoError(t, err)

					twice, notices, err := Normalize(once.Raw(), limits)
					require.NoError(t, err)
					require.Equal(t, once, twice, "not idempotent for %+v", raw)
					require.Empty(t, notices, "second pass adjusted %+v", once)

					require.GreaterOrEqual(t, once.TotalLectures, 1)
					require.LessOrEqual(t, once.TotalLectures, limits.MaxTotalLectures)
					require.GreaterOrEqual(t, once.AttendedLectures, 0)
					require.LessOrEqual(t, once.AttendedLectures, once.TotalLectures)
					require.Equal(t, once.TotalLectures-once.AttendedLectures, once.RemainingLectures)
					require.GreaterOrEqual(t, once.RequiredPercentage, 1.0)
					require.LessOrEqual(t, once.RequiredPercentage, 100.0)
				}
			}
		}
	}
}

func TestNormalizeZeroLimitsUseDefault(t *testing.T) {
	got, _, err := Normalize(RawInputs{TotalLectures: 600, AttendedLectures: 600, RequiredPercentage: 75}, Limits{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxTotalLectures, got.TotalLectures)
}

func TestApply(t *testing.T) {
	current := NormalizedInputs{TotalLectures: 100, AttendedLectures: 75, RemainingLectures: 25, RequiredPercentage: 75}

	tests := []struct {
		name        string
		field       Field
		value       float64
		want        NormalizedInputs
		wantNotices []Field
	}{
		{
			name:  "total shrinks remaining",
			field: FieldTotal,
			value: 90,
			want:  NormalizedInputs{TotalLectures: 90, AttendedLectures: 75, RemainingLectures: 15, RequiredPercentage: 75},
		},
		{
			name:        "total below attended clamps attended",
			field:       FieldTotal,
			value:       60,
			want:        NormalizedInputs{TotalLectures: 60, AttendedLectures: 60, RemainingLectures: 0, RequiredPercentage: 75},
			wantNotices: []Field{FieldAttended},
		},
		{
			name:        "total above course cap",
			field:       FieldTotal,
			value:       1000,
			want:        NormalizedInputs{TotalLectures: 500, AttendedLectures: 75, RemainingLectures: 425, RequiredPercentage: 75},
			wantNotices: []Field{FieldTotal},
		},
		{
			name:  "attended grows total",
			field: FieldAttended,
			value: 80,
			want:  NormalizedInputs{TotalLectures: 105, AttendedLectures: 80, RemainingLectures: 25, RequiredPercentage: 75},
		},
		{
			name:        "attended above total is clamped",
			field:       FieldAttended,
			value:       120,
			want:        NormalizedInputs{TotalLectures: 125, AttendedLectures: 100, RemainingLectures: 25, RequiredPercentage: 75},
			wantNotices: []Field{FieldAttended},
		},
		{
			name:  "remaining derives total",
			field: FieldRemaining,
			value: 5,
			want:  NormalizedInputs{TotalLectures: 80, AttendedLectures: 75, RemainingLectures: 5, RequiredPercentage: 75},
		},
		{
			name:        "remaining above course cap",
			field:       FieldRemaining,
			value:       900,
			want:        NormalizedInputs{TotalLectures: 500, AttendedLectures: 75, RemainingLectures: 425, RequiredPercentage: 75},
			wantNotices: []Field{FieldRemaining},
		},
		{
			name:        "required clamps",
			field:       FieldRequired,
			value:       0,
			want:        NormalizedInputs{TotalLectures: 100, AttendedLectures: 75, RemainingLectures: 25, RequiredPercentage: 1},
			wantNotices: []Field{FieldRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, notices, err := Apply(current, tt.field, tt.value, DefaultLimits())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			var fields []Field
			for _, n := range notices {
				fields = append(fields, n.Field)
			}
			assert.Equal(t, tt.wantNotices, fields)
		})
	}
}

func TestApplyRejectsNonFinite(t *testing.T) {
	current := NormalizedInputs{TotalLectures: 10, AttendedLectures: 5, RemainingLectures: 5, RequiredPercentage: 75}

	got, notices, err := Apply(current, FieldAttended, math.NaN(), DefaultLimits())
	assert.True(t, IsInvalidInput(err))
	assert.Nil(t, notices)
	assert.Equal(t, current, got)
}

func TestNoticeString(t *testing.T) {
	n := AdjustedInputNotice{Field: FieldAttended, From: 120, To: 100, Reason: "attended lectures cannot exceed total lectures"}
	assert.Equal(t, "Attended Lectures adjusted from 120 to 100: attended lectures cannot exceed total lectures", n.String())
}
