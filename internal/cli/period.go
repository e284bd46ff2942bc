package cli

import (
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/spf13/cobra"
)

type periodOutput struct {
	Period    period.PeriodResponse `json:"period"`
	NextStart string                `json:"next_start"`
}

// NewPeriodCommand creates the period command.
func NewPeriodCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "period [date]",
		Short: "Resolve the semi-monthly period of a date",
		Long: `Resolve the semi-monthly payroll period a date belongs to.

The date is a civil date (YYYY-MM-DD) or an RFC 3339 timestamp. Without an
argument the fixtures reference date is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return runPeriod(rootOpts, args, formatter)
		},
	}
}

func runPeriod(opts *RootOptions, args []string, out *OutputFormatter) error {
	var ref time.Time
	if len(args) == 1 {
		parsed, err := period.ParseReferenceDate(args[0])
		if err != nil {
			return err
		}
		ref = parsed
	} else {
		ds, err := fixtures.Load(opts.Fixtures)
		if err != nil {
			return err
		}
		ref = ds.ReferenceDate
	}

	info, err := period.Resolve(ref)
	if err != nil {
		return err
	}
	next, err := period.AdvanceToNext(ref)
	if err != nil {
		return err
	}

	result := periodOutput{
		Period:    period.ToResponse(info, ref),
		NextStart: period.DayKey(next),
	}
	if out.JSON() {
		return out.WriteJSON(result)
	}

	out.Field("Period", info.Identifier)
	out.Field("Range", info.DisplayRange)
	out.Field("Year", info.Year)
	out.Field("Month", info.MonthName)
	out.Field("Half", int(info.Half))
	out.Field("Reference date", period.DayKey(ref))
	out.Field("Next period starts", result.NextStart)
	return nil
}
