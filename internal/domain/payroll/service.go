package payroll

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

type PayrollService interface {
	// Period
	CurrentPeriod(ctx context.Context) (period.PeriodResponse, error)
	ListPeriodHistory(ctx context.Context) ([]period.RecordResponse, error)

	// Processing
	ListProcessing(ctx context.Context, actor user.User, filter ProcessingFilter) (ProcessingListResponse, error)
	GetEmployeePayroll(ctx context.Context, actor user.User, employeeID string) (ResultResponse, error)
	PayEmployee(ctx context.Context, actor user.User, employeeID string) (PaymentResponse, error)
	ClosePeriod(ctx context.Context, actor user.User) (ClosePeriodResponse, error)

	// Self-service
	SignPayslip(ctx context.Context, actor user.User, req SignPayslipRequest) (SignatureResponse, error)
	PayslipPDF(ctx context.Context, actor user.User, employeeID string) ([]byte, error)
}
