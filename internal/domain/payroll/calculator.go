package payroll

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/shopspring/decimal"
)

// WithholdingPolicy holds the flat statutory rates applied to total earnings.
type WithholdingPolicy struct {
	Name     string
	ISRRate  decimal.Decimal
	IMSSRate decimal.Decimal
}

// FlatRatePolicy is the simulated 20% ISR / 5% IMSS withholding. It is not a
// real tax table.
var FlatRatePolicy = WithholdingPolicy{
	Name:     "flat_rate_simulated",
	ISRRate:  decimal.RequireFromString("0.20"),
	IMSSRate: decimal.RequireFromString("0.05"),
}

func (p WithholdingPolicy) Validate() error {
	one := decimal.NewFromInt(1)
	if p.ISRRate.IsNegative() || p.ISRRate.GreaterThan(one) {
		return fmt.Errorf("%w: isr rate %s", ErrInvalidPolicy, p.ISRRate)
	}
	if p.IMSSRate.IsNegative() || p.IMSSRate.GreaterThan(one) {
		return fmt.Errorf("%w: imss rate %s", ErrInvalidPolicy, p.IMSSRate)
	}
	return nil
}

type Calculator struct {
	policy WithholdingPolicy
}

func NewCalculator(policy WithholdingPolicy) *Calculator {
	return &Calculator{policy: policy}
}

func (c *Calculator) Policy() WithholdingPolicy {
	return c.policy
}

var two = decimal.NewFromInt(2)

// Calculate computes the semi-monthly payroll of emp for the period containing
// ref. Only incidents of emp in that period count. The result depends on
// nothing but the arguments.
func (c *Calculator) Calculate(emp employee.Employee, pool []incident.Incident, ref time.Time) (Result, error) {
	periodID, err := period.Identifier(ref)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		EmployeeID: emp.ID,
		PeriodID:   periodID,
		PolicyName: c.policy.Name,
		BaseSalary: emp.GrossSalary.Div(two),
		Earnings:   make([]incident.Incident, 0),
		Deductions: make([]incident.Incident, 0),
	}

	earned := decimal.Zero
	deducted := decimal.Zero
	for _, inc := range incident.ForEmployeePeriod(pool, emp.ID, periodID) {
		switch {
		case inc.IsEarning():
			res.Earnings = append(res.Earnings, inc)
			earned = earned.Add(inc.Amount)
		case inc.IsDeduction():
			res.Deductions = append(res.Deductions, inc)
			deducted = deducted.Add(inc.Amount)
		}
	}

	res.TotalEarnings = res.BaseSalary.Add(earned)
	res.ISRDeduction = res.TotalEarnings.Mul(c.policy.ISRRate)
	res.IMSSDeduction = res.TotalEarnings.Mul(c.policy.IMSSRate)
	res.IncidentDeductions = deducted.Abs()
	res.TotalDeductions = res.ISRDeduction.Add(res.IMSSDeduction).Add(res.IncidentDeductions)
	res.NetPay = res.TotalEarnings.Sub(res.TotalDeductions)

	return res, nil
}
