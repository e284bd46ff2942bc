package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func collectDayLogs(rows pgx.Rows) ([]attendance.DayLog, error) {
	defer rows.Close()

	var logs []attendance.DayLog
	for rows.Next() {
		var log attendance.DayLog
		if err := rows.Scan(&log.EmployeeID, &log.Date, &log.ClockIn, &log.ClockOut, &log.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return logs, nil
}

// GetDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetDay(ctx context.Context, employeeID, date string) (attendance.DayLog, error) {
	q := GetQuerier(ctx, r.db)

	log := attendance.DayLog{EmployeeID: employeeID, Date: date}
	err := q.QueryRow(ctx,
		`SELECT clock_in, clock_out, updated_at FROM attendance_logs WHERE employee_id = $1 AND day = $2`,
		employeeID, date,
	).Scan(&log.ClockIn, &log.ClockOut, &log.UpdatedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return attendance.DayLog{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return log, nil
}

// SaveDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SaveDay(ctx context.Context, log attendance.DayLog) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO attendance_logs (employee_id, day, clock_in, clock_out, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, day) DO UPDATE
		SET clock_in = EXCLUDED.clock_in, clock_out = EXCLUDED.clock_out, updated_at = EXCLUDED.updated_at
	`, log.EmployeeID, log.Date, log.ClockIn, log.ClockOut, log.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save attendance: %w", err)
	}
	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) (map[string]attendance.DayLog, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT employee_id, day, clock_in, clock_out, updated_at FROM attendance_logs WHERE day = $1`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	logs, err := collectDayLogs(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string]attendance.DayLog, len(logs))
	for _, log := range logs {
		out[log.EmployeeID] = log
	}
	return out, nil
}

// ListByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByMonth(ctx context.Context, employeeID, month string) (map[string]attendance.DayLog, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT employee_id, day, clock_in, clock_out, updated_at FROM attendance_logs
		WHERE employee_id = $1 AND day LIKE $2 || '-%'`,
		employeeID, month,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by month: %w", err)
	}

	logs, err := collectDayLogs(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string]attendance.DayLog, len(logs))
	for _, log := range logs {
		out[log.Date] = log
	}
	return out, nil
}
