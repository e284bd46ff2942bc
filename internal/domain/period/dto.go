package period

import (
	"time"

	"github.com/shopspring/decimal"
)

type PeriodResponse struct {
	Identifier    string `json:"identifier"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	MonthName     string `json:"month_name"`
	Half          int    `json:"half"`
	StartDay      int    `json:"start_day"`
	EndDay        int    `json:"end_day"`
	DisplayRange  string `json:"display_range"`
	Status        string `json:"status"`
	ReferenceDate string `json:"reference_date,omitempty"`
}

type RecordResponse struct {
	Identifier     string          `json:"identifier"`
	DisplayRange   string          `json:"display_range"`
	Status         string          `json:"status"`
	EmployeesPaid  int             `json:"employees_paid"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	TotalNetPay    decimal.Decimal `json:"total_net_pay"`
	ClosedAt       string          `json:"closed_at"`
	ClosedBy       string          `json:"closed_by"`
	NextIdentifier string          `json:"next_identifier"`
}

// ToResponse maps an Info to its API shape. ref is echoed back when non-zero.
func ToResponse(info Info, ref time.Time) PeriodResponse {
	resp := PeriodResponse{
		Identifier:   info.Identifier,
		Year:         info.Year,
		Month:        int(info.Month),
		MonthName:    info.MonthName,
		Half:         int(info.Half),
		StartDay:     info.StartDay,
		EndDay:       info.EndDay,
		DisplayRange: info.DisplayRange,
		Status:       string(info.Status),
	}
	if !ref.IsZero() {
		resp.ReferenceDate = DayKey(ref)
	}
	return resp
}

func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		Identifier:     r.Identifier,
		DisplayRange:   r.DisplayRange,
		Status:         string(r.Status),
		EmployeesPaid:  r.EmployeesPaid,
		TotalEarnings:  r.TotalEarnings,
		TotalNetPay:    r.TotalNetPay,
		ClosedAt:       r.ClosedAt.Format(time.RFC3339),
		ClosedBy:       r.ClosedBy,
		NextIdentifier: r.NextIdentifier,
	}
}
