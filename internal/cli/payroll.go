package cli

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// PayrollOptions holds flags for the payroll command.
type PayrollOptions struct {
	Date       string
	EmployeeID string
	ISRRate    string
	IMSSRate   string
}

// NewPayrollCommand creates the payroll command.
func NewPayrollCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PayrollOptions{}

	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Compute one employee's payroll from fixtures",
		Long: `Compute the semi-monthly payroll of one employee for the period containing
--date, using the employees and incidents of the fixtures dataset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return runPayroll(rootOpts, opts, formatter)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "reference date (default: fixtures reference date)")
	cmd.Flags().StringVarP(&opts.EmployeeID, "employee", "e", "", "employee ID")
	cmd.Flags().StringVar(&opts.ISRRate, "isr-rate", payroll.FlatRatePolicy.ISRRate.String(), "ISR withholding rate")
	cmd.Flags().StringVar(&opts.IMSSRate, "imss-rate", payroll.FlatRatePolicy.IMSSRate.String(), "IMSS withholding rate")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

func runPayroll(rootOpts *RootOptions, opts *PayrollOptions, out *OutputFormatter) error {
	ds, err := fixtures.Load(rootOpts.Fixtures)
	if err != nil {
		return err
	}

	ref := ds.ReferenceDate
	if opts.Date != "" {
		if ref, err = period.ParseReferenceDate(opts.Date); err != nil {
			return err
		}
	}

	policy, err := policyFromFlags(opts)
	if err != nil {
		return err
	}

	emp, err := findEmployee(ds.Employees, opts.EmployeeID)
	if err != nil {
		return err
	}

	res, err := payroll.NewCalculator(policy).Calculate(emp, ds.Incidents, ref)
	if err != nil {
		return err
	}

	if out.JSON() {
		return out.WriteJSON(payroll.ToResultResponse(res))
	}

	out.Field("Employee", fmt.Sprintf("%s %s", emp.ExternalID, emp.Name))
	out.Field("Period", res.PeriodID)
	out.Field("Policy", res.PolicyName)
	out.Field("Base salary", money(res.BaseSalary))
	writeLines(out, "Earnings", res.Earnings)
	writeLines(out, "Deductions", res.Deductions)
	out.Field("Total earnings", money(res.TotalEarnings))
	out.Field("ISR", money(res.ISRDeduction))
	out.Field("IMSS", money(res.IMSSDeduction))
	out.Field("Incident deductions", money(res.IncidentDeductions))
	out.Field("Total deductions", money(res.TotalDeductions))
	out.Field("Net pay", money(res.NetPay))
	if res.IsNegative() {
		out.Line("WARNING: net pay is negative")
	}
	return nil
}

func writeLines(out *OutputFormatter, title string, lines []incident.Incident) {
	out.Line("%s:", title)
	if len(lines) == 0 {
		out.Line("  (none)")
		return
	}
	for _, inc := range lines {
		out.Line("  %-18s%12s  %s", inc.Kind, money(inc.Amount.Abs()), inc.Comment)
	}
}

func policyFromFlags(opts *PayrollOptions) (payroll.WithholdingPolicy, error) {
	isr, err := decimal.NewFromString(opts.ISRRate)
	if err != nil {
		return payroll.WithholdingPolicy{}, fmt.Errorf("invalid --isr-rate: %w", err)
	}
	imss, err := decimal.NewFromString(opts.IMSSRate)
	if err != nil {
		return payroll.WithholdingPolicy{}, fmt.Errorf("invalid --imss-rate: %w", err)
	}
	policy := payroll.WithholdingPolicy{Name: payroll.FlatRatePolicy.Name, ISRRate: isr, IMSSRate: imss}
	if err := policy.Validate(); err != nil {
		return payroll.WithholdingPolicy{}, err
	}
	return policy, nil
}

func findEmployee(employees []employee.Employee, id string) (employee.Employee, error) {
	for _, e := range employees {
		if e.ID == id || e.ExternalID == id {
			return e, nil
		}
	}
	return employee.Employee{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, id)
}

// civilDay drops the time of day from t in the payroll location.
func civilDay(t time.Time) time.Time {
	y, m, d := t.In(period.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, period.Location)
}
