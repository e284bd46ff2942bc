package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// ==================== REFERENCE CLOCK ====================

// GetReferenceDate implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetReferenceDate(ctx context.Context) (time.Time, error) {
	q := GetQuerier(ctx, r.db)

	var ref time.Time
	err := q.QueryRow(ctx, `SELECT reference_date FROM payroll_settings WHERE id`).Scan(&ref)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, payroll.ErrReferenceDateNotSet
		}
		return time.Time{}, fmt.Errorf("failed to get reference date: %w", err)
	}
	return ref.In(period.Location), nil
}

// SetReferenceDate implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SetReferenceDate(ctx context.Context, ref time.Time) error {
	if ref.IsZero() {
		return period.ErrInvalidReferenceDate
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (id, reference_date) VALUES (TRUE, $1)
		ON CONFLICT (id) DO UPDATE SET reference_date = EXCLUDED.reference_date
	`
	if _, err := q.Exec(ctx, query, ref); err != nil {
		return fmt.Errorf("failed to set reference date: %w", err)
	}
	return nil
}

// ==================== PAYMENTS ====================

// MarkPaid implements payroll.PayrollRepository. The first payment wins.
func (r *payrollRepositoryImpl) MarkPaid(ctx context.Context, p payroll.Payment) (payroll.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_payments (period_id, employee_id, paid_at, paid_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (period_id, employee_id) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, p.PeriodID, p.EmployeeID, p.PaidAt, p.PaidBy); err != nil {
		return payroll.Payment{}, fmt.Errorf("failed to mark paid: %w", err)
	}

	var stored payroll.Payment
	err := q.QueryRow(ctx,
		`SELECT period_id, employee_id, paid_at, paid_by FROM payroll_payments WHERE period_id = $1 AND employee_id = $2`,
		p.PeriodID, p.EmployeeID,
	).Scan(&stored.PeriodID, &stored.EmployeeID, &stored.PaidAt, &stored.PaidBy)
	if err != nil {
		return payroll.Payment{}, fmt.Errorf("failed to read payment: %w", err)
	}
	return stored, nil
}

// ListPayments implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPayments(ctx context.Context, periodID string) ([]payroll.Payment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT period_id, employee_id, paid_at, paid_by FROM payroll_payments WHERE period_id = $1 ORDER BY paid_at`,
		periodID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []payroll.Payment{}
	for rows.Next() {
		var p payroll.Payment
		if err := rows.Scan(&p.PeriodID, &p.EmployeeID, &p.PaidAt, &p.PaidBy); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return payments, nil
}

// ==================== SIGNATURES ====================

// SignPayslip implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SignPayslip(ctx context.Context, s payroll.Signature) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		INSERT INTO payslip_signatures (period_id, employee_id, signed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (period_id, employee_id) DO NOTHING
	`, s.PeriodID, s.EmployeeID, s.SignedAt)
	if err != nil {
		return false, fmt.Errorf("failed to sign payslip: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListSignatures implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListSignatures(ctx context.Context, periodID string) ([]payroll.Signature, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT period_id, employee_id, signed_at FROM payslip_signatures WHERE period_id = $1 ORDER BY signed_at`,
		periodID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list signatures: %w", err)
	}
	defer rows.Close()

	signatures := []payroll.Signature{}
	for rows.Next() {
		var s payroll.Signature
		if err := rows.Scan(&s.PeriodID, &s.EmployeeID, &s.SignedAt); err != nil {
			return nil, fmt.Errorf("failed to scan signature: %w", err)
		}
		signatures = append(signatures, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return signatures, nil
}

// ==================== PERIOD HISTORY ====================

// CreatePeriodRecord implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreatePeriodRecord(ctx context.Context, rec period.Record) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO period_records (identifier, display_range, status, employees_paid, total_earnings,
			total_net_pay, closed_at, closed_by, next_identifier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		rec.Identifier,
		rec.DisplayRange,
		string(rec.Status),
		rec.EmployeesPaid,
		rec.TotalEarnings,
		rec.TotalNetPay,
		rec.ClosedAt,
		rec.ClosedBy,
		rec.NextIdentifier,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.ErrPeriodAlreadyClosed
		}
		return fmt.Errorf("failed to create period record: %w", err)
	}
	return nil
}

// ListPeriodRecords implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPeriodRecords(ctx context.Context) ([]period.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT identifier, display_range, status, employees_paid, total_earnings,
			total_net_pay, closed_at, closed_by, next_identifier
		FROM period_records
		ORDER BY closed_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list period records: %w", err)
	}
	defer rows.Close()

	records := []period.Record{}
	for rows.Next() {
		var rec period.Record
		var status string
		err := rows.Scan(
			&rec.Identifier,
			&rec.DisplayRange,
			&status,
			&rec.EmployeesPaid,
			&rec.TotalEarnings,
			&rec.TotalNetPay,
			&rec.ClosedAt,
			&rec.ClosedBy,
			&rec.NextIdentifier,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period record: %w", err)
		}
		rec.Status = period.Status(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}
