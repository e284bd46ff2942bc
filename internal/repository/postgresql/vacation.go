package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepositoryImpl{db: db}
}

const vacationColumns = `id, employee_id, start_date, end_date, days_requested, status, requested_at, reviewed_by, reviewed_at`

func scanVacation(row pgx.Row) (vacation.Request, error) {
	var req vacation.Request
	var status string
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.StartDate,
		&req.EndDate,
		&req.DaysRequested,
		&status,
		&req.RequestedAt,
		&req.ReviewedBy,
		&req.ReviewedAt,
	)
	req.Status = vacation.Status(status)
	return req, err
}

func (r *vacationRepositoryImpl) list(ctx context.Context, where string, arg any) ([]vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+vacationColumns+` FROM vacation_requests WHERE `+where+` ORDER BY requested_at, id`, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	defer rows.Close()

	var requests []vacation.Request
	for rows.Next() {
		req, err := scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return requests, nil
}

// Create implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) Create(ctx context.Context, req vacation.Request) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_requests (` + vacationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + vacationColumns

	created, err := scanVacation(q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.StartDate,
		req.EndDate,
		req.DaysRequested,
		string(req.Status),
		req.RequestedAt,
		req.ReviewedBy,
		req.ReviewedAt,
	))
	if err != nil {
		return vacation.Request{}, fmt.Errorf("failed to create vacation request: %w", err)
	}
	return created, nil
}

// GetByID implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanVacation(q.QueryRow(ctx, `SELECT `+vacationColumns+` FROM vacation_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Request{}, vacation.ErrRequestNotFound
		}
		return vacation.Request{}, fmt.Errorf("failed to get vacation request: %w", err)
	}
	return req, nil
}

// Update implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) Update(ctx context.Context, req vacation.Request) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE vacation_requests
		SET start_date = $2, end_date = $3, days_requested = $4, status = $5, reviewed_by = $6, reviewed_at = $7
		WHERE id = $1
	`, req.ID, req.StartDate, req.EndDate, req.DaysRequested, string(req.Status), req.ReviewedBy, req.ReviewedAt)
	if err != nil {
		return fmt.Errorf("failed to update vacation request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrRequestNotFound
	}
	return nil
}

// ListByEmployee implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.Request, error) {
	return r.list(ctx, `employee_id = $1`, employeeID)
}

// ListByStatus implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) ListByStatus(ctx context.Context, status vacation.Status) ([]vacation.Request, error) {
	return r.list(ctx, `status = $1`, string(status))
}
