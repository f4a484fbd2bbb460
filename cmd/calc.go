package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bunkwise/internal/attendance"
	"github.com/abhisek/bunkwise/internal/report"
)

var calcCmd = newCalcCmd()

func newCalcCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "calc",
		Short: "Calculate attendance without the interactive UI",
		Long: `Calculate attendance from flags and print a report.

Total lectures default to attended plus remaining lectures. Out-of-range
values are clamped; each adjustment is reported on stderr in text format,
or inside the report for json and markdown.`,
		Example: "  bunkwise calc --attended 25 --remaining 10 --required 75\n" +
			"  bunkwise calc --attended 48 --remaining 2 --format json",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runCalc,
	}

	c.Flags().String("total", "", "Total lectures in the course (default attended + remaining)")
	c.Flags().String("attended", "", "Lectures attended so far (required)")
	c.Flags().String("remaining", "", "Lectures left in the course (required)")
	c.Flags().String("required", "", "Required attendance percentage (default from config)")
	c.Flags().String("format", "text", "Output format: text, json or markdown")
	_ = c.MarkFlagRequired("attended")
	_ = c.MarkFlagRequired("remaining")
	return c
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	formatVal, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatVal)
	if err != nil {
		return err
	}

	raw, err := calcInputs(cmd, cfg.Defaults.RequiredPercentage)
	if err != nil {
		return err
	}

	in, notices, err := attendance.Normalize(raw, cfg.AttendanceLimits())
	if err != nil {
		return err
	}
	res, err := attendance.Evaluate(in)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	r := report.Build(in, res, notices)
	if format == report.FormatText {
		for _, n := range notices {
			fmt.Fprintln(cmd.ErrOrStderr(), "Note:", n.String())
		}
	}
	return report.Write(cmd.OutOrStdout(), format, r)
}

// calcInputs reads the lecture flags. An unset --total becomes attended +
// remaining and an unset --required falls back to defaultRequired.
func calcInputs(cmd *cobra.Command, defaultRequired float64) (attendance.RawInputs, error) {
	values := map[attendance.Field]string{}
	for f, name := range map[attendance.Field]string{
		attendance.FieldTotal:     "total",
		attendance.FieldAttended:  "attended",
		attendance.FieldRemaining: "remaining",
		attendance.FieldRequired:  "required",
	} {
		if cmd.Flags().Changed(name) {
			values[f], _ = cmd.Flags().GetString(name)
		}
	}

	_, hasRequired := values[attendance.FieldRequired]
	if !hasRequired {
		values[attendance.FieldRequired] = "0"
	}
	_, hasTotal := values[attendance.FieldTotal]
	if !hasTotal {
		values[attendance.FieldTotal] = "0"
	}

	raw, err := attendance.ParseRaw(values)
	if err != nil {
		return attendance.RawInputs{}, err
	}
	if !hasRequired {
		raw.RequiredPercentage = defaultRequired
	}
	if !hasTotal {
		raw.TotalLectures = raw.AttendedLectures + raw.RemainingLectures
	}
	return raw, nil
}
