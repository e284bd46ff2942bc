package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(period.Location).Format(time.RFC3339)
	return &s
}

type ClockResponse struct {
	EmployeeID string      `json:"employee_id"`
	Date       string      `json:"date"`
	Action     ClockAction `json:"action"`
	ClockIn    *string     `json:"clock_in"`
	ClockOut   *string     `json:"clock_out"`
	Status     string      `json:"status"`
}

func ToClockResponse(log DayLog, action ClockAction) ClockResponse {
	return ClockResponse{
		EmployeeID: log.EmployeeID,
		Date:       log.Date,
		Action:     action,
		ClockIn:    formatClock(log.ClockIn),
		ClockOut:   formatClock(log.ClockOut),
		Status:     string(log.Status()),
	}
}

type DailyEntry struct {
	EmployeeID   string  `json:"employee_id"`
	ExternalID   string  `json:"external_id"`
	EmployeeName string  `json:"employee_name"`
	BranchID     string  `json:"branch_id"`
	ClockIn      *string `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`
	Status       string  `json:"status"`
}

type DailySummaryResponse struct {
	Date     string       `json:"date"`
	Present  int          `json:"present"`
	Finished int          `json:"finished"`
	Absent   int          `json:"absent"`
	Entries  []DailyEntry `json:"entries"`
}

type MonthDayResponse struct {
	Date        string          `json:"date"`
	DayName     string          `json:"day_name"`
	ClockIn     *string         `json:"clock_in"`
	ClockOut    *string         `json:"clock_out"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Status      string          `json:"status"`
}

type MonthlyReportResponse struct {
	EmployeeID string             `json:"employee_id"`
	Month      string             `json:"month"`
	WorkedDays int                `json:"worked_days"`
	Absences   int                `json:"absences"`
	TotalHours decimal.Decimal    `json:"total_hours"`
	Days       []MonthDayResponse `json:"days"`
}

func ToMonthlyReportResponse(employeeID, month string, rows []MonthDay, summary MonthSummary) MonthlyReportResponse {
	days := make([]MonthDayResponse, 0, len(rows))
	for _, r := range rows {
		days = append(days, MonthDayResponse{
			Date:        r.Date,
			DayName:     r.DayName,
			ClockIn:     formatClock(r.ClockIn),
			ClockOut:    formatClock(r.ClockOut),
			HoursWorked: r.HoursWorked.Round(2),
			Status:      string(r.Status),
		})
	}
	return MonthlyReportResponse{
		EmployeeID: employeeID,
		Month:      month,
		WorkedDays: summary.WorkedDays,
		Absences:   summary.Absences,
		TotalHours: summary.TotalHours.Round(2),
		Days:       days,
	}
}

type MonthlyReportRequest struct {
	EmployeeID string
	Month      string
}

// ParseMonth parses YYYY-MM.
func ParseMonth(s string) (int, time.Month, error) {
	t, ok := validator.IsValidMonth(s)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return t.Year(), t.Month(), nil
}
