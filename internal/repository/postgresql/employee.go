package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, external_id, name, email, rfc, curp, nss, clabe, branch_id, position, rank,
	gross_salary, daily_salary, hire_date, status, avatar_url, archived_at, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var status string
	err := row.Scan(
		&e.ID,
		&e.ExternalID,
		&e.Name,
		&e.Email,
		&e.RFC,
		&e.CURP,
		&e.NSS,
		&e.CLABE,
		&e.BranchID,
		&e.Position,
		&e.Rank,
		&e.GrossSalary,
		&e.DailySalary,
		&e.HireDate,
		&status,
		&e.AvatarURL,
		&e.ArchivedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	e.Status = employee.Status(status)
	// Rows written before the column was widened hold a rounded value.
	e.DailySalary = employee.DailySalaryFor(e.GrossSalary)
	return e, err
}

func employeeArgs(e employee.Employee) []any {
	return []any{
		e.ID,
		e.ExternalID,
		e.Name,
		e.Email,
		e.RFC,
		e.CURP,
		e.NSS,
		e.CLABE,
		e.BranchID,
		e.Position,
		e.Rank,
		e.GrossSalary,
		e.DailySalary,
		e.HireDate,
		string(e.Status),
		e.AvatarURL,
		e.ArchivedAt,
		e.CreatedAt,
		e.UpdatedAt,
	}
}

// mapEmployeeConflict turns unique-index violations into domain errors.
func mapEmployeeConflict(err error) error {
	constraint, ok := violatedConstraint(err)
	if !ok {
		return nil
	}
	if constraint == "employees_email_key" {
		return employee.ErrEmailExists
	}
	return employee.ErrExternalIDExists
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query, employeeArgs(newEmployee)...))
	if err != nil {
		if conflict := mapEmployeeConflict(err); conflict != nil {
			return employee.Employee{}, conflict
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET external_id = $2, name = $3, email = $4, rfc = $5, curp = $6, nss = $7, clabe = $8,
			branch_id = $9, position = $10, rank = $11, gross_salary = $12, daily_salary = $13,
			hire_date = $14, status = $15, avatar_url = $16, archived_at = $17,
			created_at = $18, updated_at = $19
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, employeeArgs(e)...)
	if err != nil {
		if conflict := mapEmployeeConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ExistsByExternalID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByExternalID(ctx context.Context, externalID, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(external_id) = LOWER($1) AND id <> $2)`,
		externalID, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check external id: %w", err)
	}
	return exists, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1) AND id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}
