// Package cli implements nominactl, the operator command line for the payroll
// engine. Commands work directly on fixture datasets, so they need no server.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format   string // "json" | "text"
	Fixtures string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for nominactl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "nominactl",
		Short: "Nómina Pro operator tools",
		Long:  "Resolve payroll periods, compute payroll and vacation accrual from fixtures, and seed PostgreSQL.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Fixtures, "fixtures", "", "fixtures YAML file (default: embedded dataset)")

	cmd.AddCommand(NewPeriodCommand(opts))
	cmd.AddCommand(NewPayrollCommand(opts))
	cmd.AddCommand(NewAccrualCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
