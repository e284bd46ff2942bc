package payroll

import (
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/shopspring/decimal"
)

// Result is the itemized payroll of one employee for one period. It is
// recomputed on every read and never stored.
type Result struct {
	EmployeeID         string
	PeriodID           string
	PolicyName         string
	BaseSalary         decimal.Decimal
	Earnings           []incident.Incident
	Deductions         []incident.Incident
	TotalEarnings      decimal.Decimal
	ISRDeduction       decimal.Decimal
	IMSSDeduction      decimal.Decimal
	IncidentDeductions decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetPay             decimal.Decimal
}

// IsNegative flags a net pay below zero. It is a valid outcome that callers
// must surface.
func (r Result) IsNegative() bool {
	return r.NetPay.IsNegative()
}

// Payment marks an employee as paid for a period.
type Payment struct {
	PeriodID   string
	EmployeeID string
	PaidAt     time.Time
	PaidBy     string
}

// Signature records that an employee signed their payslip for a period.
type Signature struct {
	PeriodID   string
	EmployeeID string
	SignedAt   time.Time
}
