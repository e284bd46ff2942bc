package payroll

import (
	"context"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
)

// PayrollRepository stores the simulated clock and per-period processing
// state. Payments and signatures are keyed by period, so a new period starts
// empty while closed periods keep their history.
type PayrollRepository interface {
	// Reference clock
	GetReferenceDate(ctx context.Context) (time.Time, error)
	SetReferenceDate(ctx context.Context, ref time.Time) error

	// Payments
	MarkPaid(ctx context.Context, p Payment) (Payment, error)
	ListPayments(ctx context.Context, periodID string) ([]Payment, error)

	// Signed payslips. SignPayslip reports false when the signature already existed.
	SignPayslip(ctx context.Context, s Signature) (bool, error)
	ListSignatures(ctx context.Context, periodID string) ([]Signature, error)

	// Closed period history
	CreatePeriodRecord(ctx context.Context, rec period.Record) error
	ListPeriodRecords(ctx context.Context) ([]period.Record, error)
}
