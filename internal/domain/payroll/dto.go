package payroll

import (
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== RESULT DTOs ==========

type ResultResponse struct {
	EmployeeID         string                      `json:"employee_id"`
	PeriodID           string                      `json:"period"`
	Policy             string                      `json:"policy"`
	BaseSalary         decimal.Decimal             `json:"base_salary"`
	Earnings           []incident.IncidentResponse `json:"earnings"`
	Deductions         []incident.IncidentResponse `json:"deductions"`
	TotalEarnings      decimal.Decimal             `json:"total_earnings"`
	ISRDeduction       decimal.Decimal             `json:"isr_deduction"`
	IMSSDeduction      decimal.Decimal             `json:"imss_deduction"`
	IncidentDeductions decimal.Decimal             `json:"incident_deductions"`
	TotalDeductions    decimal.Decimal             `json:"total_deductions"`
	NetPay             decimal.Decimal             `json:"net_pay"`
	NegativeNetPay     bool                        `json:"negative_net_pay"`
}

func ToResultResponse(r Result) ResultResponse {
	return ResultResponse{
		EmployeeID:         r.EmployeeID,
		PeriodID:           r.PeriodID,
		Policy:             r.PolicyName,
		BaseSalary:         r.BaseSalary,
		Earnings:           incident.ToResponses(r.Earnings),
		Deductions:         incident.ToResponses(r.Deductions),
		TotalEarnings:      r.TotalEarnings,
		ISRDeduction:       r.ISRDeduction,
		IMSSDeduction:      r.IMSSDeduction,
		IncidentDeductions: r.IncidentDeductions,
		TotalDeductions:    r.TotalDeductions,
		NetPay:             r.NetPay,
		NegativeNetPay:     r.IsNegative(),
	}
}

// ========== PROCESSING DTOs ==========

type ProcessingFilter struct {
	Page     int
	PageSize int
}

type EmployeePayrollResponse struct {
	EmployeeID   string         `json:"employee_id"`
	ExternalID   string         `json:"external_id"`
	EmployeeName string         `json:"employee_name"`
	BranchID     string         `json:"branch_id"`
	Paid         bool           `json:"paid"`
	Signed       bool           `json:"signed"`
	Payroll      ResultResponse `json:"payroll"`
}

type ProcessingListResponse struct {
	Period        period.PeriodResponse     `json:"period"`
	Employees     []EmployeePayrollResponse `json:"employees"`
	PendingCount  int                       `json:"pending_count"`
	PaidCount     int                       `json:"paid_count"`
	Progress      decimal.Decimal           `json:"progress"`
	TotalEarnings decimal.Decimal           `json:"total_earnings"`
	TotalNetPay   decimal.Decimal           `json:"total_net_pay"`
	Pagination    pagination.Info           `json:"pagination"`
	Pages         []pagination.Button       `json:"pages"`
}

// Progress is paid/total as a percentage rounded to two places. An empty
// scope is 0%.
func Progress(paid, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(paid)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

// ========== PAYMENT DTOs ==========

type PaymentResponse struct {
	EmployeeID string `json:"employee_id"`
	PeriodID   string `json:"period"`
	PaidAt     string `json:"paid_at"`
	PaidBy     string `json:"paid_by"`
}

func ToPaymentResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		EmployeeID: p.EmployeeID,
		PeriodID:   p.PeriodID,
		PaidAt:     p.PaidAt.Format(time.RFC3339),
		PaidBy:     p.PaidBy,
	}
}

// ========== SIGNATURE DTOs ==========

// SignPayslipRequest signs the caller's payslip. An empty period means the
// current one.
type SignPayslipRequest struct {
	PeriodID string `json:"period,omitempty"`
}

func (r *SignPayslipRequest) Validate() error {
	if r.PeriodID == "" {
		return nil
	}
	if _, err := period.ParseIdentifier(r.PeriodID); err != nil {
		return validator.ValidationErrors{{Field: "period", Message: "period must look like YYYY-MM-Q1 or YYYY-MM-Q2"}}
	}
	return nil
}

type SignatureResponse struct {
	EmployeeID    string `json:"employee_id"`
	PeriodID      string `json:"period"`
	SignedAt      string `json:"signed_at"`
	AlreadySigned bool   `json:"already_signed"`
}

// ========== CLOSE DTOs ==========

type ClosePeriodResponse struct {
	Closed period.RecordResponse `json:"closed"`
	Next   period.PeriodResponse `json:"next"`
}
