package payroll

import "errors"

var (
	ErrInvalidPolicy       = errors.New("invalid withholding policy")
	ErrPayrollIncomplete   = errors.New("payroll has pending payments for the current period")
	ErrNoActiveEmployees   = errors.New("there are no active employees to close the period for")
	ErrReferenceDateNotSet = errors.New("payroll reference date is not set")
	ErrPeriodAlreadyClosed = errors.New("payroll period is already closed")
)
