package dashboard

import (
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/shopspring/decimal"
)

// ========== COMBINED DASHBOARD ==========

// DashboardResponse summarizes the current period for the actor's scope.
type DashboardResponse struct {
	Period  period.PeriodResponse `json:"period"`
	Payroll PayrollSummary        `json:"payroll"`

	ActiveEmployees         int `json:"active_employees"`
	PeriodIncidents         int `json:"period_incidents"`
	PendingVacationRequests int `json:"pending_vacation_requests"`
}

// ========== PAYROLL SUMMARY ==========

type PayrollSummary struct {
	PaidCount     int             `json:"paid_count"`
	PendingCount  int             `json:"pending_count"`
	Progress      decimal.Decimal `json:"progress"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	TotalNetPay   decimal.Decimal `json:"total_net_pay"`
}
