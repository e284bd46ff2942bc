package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/access"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	payrollRepo    payroll.PayrollRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	payrollRepo payroll.PayrollRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		payrollRepo:    payrollRepo,
		now:            time.Now,
	}
}

// stamp places the wall-clock time of now on the civil day of ref.
func stamp(ref, now time.Time) time.Time {
	y, m, d := ref.In(period.Location).Date()
	local := now.In(period.Location)
	return time.Date(y, m, d, local.Hour(), local.Minute(), local.Second(), 0, period.Location)
}

// Clock implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Clock(ctx context.Context, actor user.User) (attendance.ClockResponse, error) {
	if !actor.IsEmployee() || actor.EmployeeID == nil {
		return attendance.ClockResponse{}, user.ErrInsufficientPermissions
	}

	emp, err := a.employeeRepo.GetByID(ctx, *actor.EmployeeID)
	if err != nil {
		return attendance.ClockResponse{}, err
	}
	if err := access.GuardActive(actor, emp); err != nil {
		return attendance.ClockResponse{}, err
	}

	ref, err := a.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return attendance.ClockResponse{}, err
	}
	date := period.DayKey(ref)

	log, err := a.attendanceRepo.GetDay(ctx, emp.ID, date)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to get day log: %w", err)
	}
	log.EmployeeID = emp.ID
	log.Date = date

	action, err := log.Clock(stamp(ref, a.now()))
	if err != nil {
		return attendance.ClockResponse{}, err
	}
	if err := a.attendanceRepo.SaveDay(ctx, log); err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to save day log: %w", err)
	}

	return attendance.ToClockResponse(log, action), nil
}

// DailySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailySummary(ctx context.Context, actor user.User) (attendance.DailySummaryResponse, error) {
	ref, err := a.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return attendance.DailySummaryResponse{}, err
	}
	date := period.DayKey(ref)

	all, err := a.employeeRepo.List(ctx)
	if err != nil {
		return attendance.DailySummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	logs, err := a.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return attendance.DailySummaryResponse{}, fmt.Errorf("failed to list day logs: %w", err)
	}

	resp := attendance.DailySummaryResponse{Date: date, Entries: make([]attendance.DailyEntry, 0)}
	for _, emp := range access.FilterActive(actor, all) {
		log := logs[emp.ID]
		status := log.Status()
		switch status {
		case attendance.DailyPresent:
			resp.Present++
		case attendance.DailyFinished:
			resp.Finished++
		default:
			resp.Absent++
		}

		entry := attendance.DailyEntry{
			EmployeeID:   emp.ID,
			ExternalID:   emp.ExternalID,
			EmployeeName: emp.Name,
			BranchID:     emp.BranchID,
			Status:       string(status),
		}
		clock := attendance.ToClockResponse(log, "")
		entry.ClockIn, entry.ClockOut = clock.ClockIn, clock.ClockOut
		resp.Entries = append(resp.Entries, entry)
	}
	return resp, nil
}

// MonthlyReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyReport(ctx context.Context, actor user.User, req attendance.MonthlyReportRequest) (attendance.MonthlyReportResponse, error) {
	month := req.Month
	if month == "" {
		ref, err := a.payrollRepo.GetReferenceDate(ctx)
		if err != nil {
			return attendance.MonthlyReportResponse{}, err
		}
		month = period.DayKey(ref)[:7]
	}
	year, mon, err := attendance.ParseMonth(month)
	if err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MonthlyReportResponse{}, err
	}
	if err := access.Guard(actor, emp); err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	logs, err := a.attendanceRepo.ListByMonth(ctx, emp.ID, month)
	if err != nil {
		return attendance.MonthlyReportResponse{}, fmt.Errorf("failed to list day logs: %w", err)
	}

	rows, summary := attendance.MonthReport(year, mon, logs)
	return attendance.ToMonthlyReportResponse(emp.ID, month, rows, summary), nil
}
