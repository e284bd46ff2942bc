package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	ds, err := fixtures.Default()
	require.NoError(t, err)
	return NewStore(ds)
}

func TestStore_ReadsAreCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Setup
	store := newSeededStore(t)
	users := NewUserRepository(store)
	employees := NewEmployeeRepository(store)

	// Act
	manager, err := users.GetByID(ctx, "102")
	require.NoError(t, err)
	manager.AssignedBranchIDs[0] = "1"

	archived, err := employees.GetByID(ctx, "6")
	require.NoError(t, err)
	*archived.ArchivedAt = time.Time{}

	// Assert
	again, err := users.GetByID(ctx, "102")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, again.AssignedBranchIDs)

	archivedAgain, err := employees.GetByID(ctx, "6")
	require.NoError(t, err)
	assert.False(t, archivedAgain.ArchivedAt.IsZero())
}

func TestStore_SeparateStoresDoNotShareState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a := newSeededStore(t)
	b := newSeededStore(t)

	emp, err := NewEmployeeRepository(a).GetByID(ctx, "1")
	require.NoError(t, err)
	require.NoError(t, emp.Archive(time.Now()))
	require.NoError(t, NewEmployeeRepository(a).Update(ctx, emp))

	other, err := NewEmployeeRepository(b).GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, other.Status)
}

func TestPayrollRepository_MarkPaidIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewPayrollRepository(newSeededStore(t))
	first := payroll.Payment{PeriodID: "2024-07-Q2", EmployeeID: "2", PaidAt: time.Unix(100, 0), PaidBy: "101"}
	second := payroll.Payment{PeriodID: "2024-07-Q2", EmployeeID: "2", PaidAt: time.Unix(200, 0), PaidBy: "102"}

	_, err := repo.MarkPaid(ctx, first)
	require.NoError(t, err)
	got, err := repo.MarkPaid(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, first, got)
	payments, err := repo.ListPayments(ctx, "2024-07-Q2")
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	other, err := repo.ListPayments(ctx, "2024-08-Q1")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPayrollRepository_SignPayslipDeduplicates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewPayrollRepository(newSeededStore(t))
	sig := payroll.Signature{PeriodID: "2024-07-Q2", EmployeeID: "3", SignedAt: time.Now()}

	created, err := repo.SignPayslip(ctx, sig)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.SignPayslip(ctx, sig)
	require.NoError(t, err)
	assert.False(t, created)

	signers, err := repo.ListSignatures(ctx, "2024-07-Q2")
	require.NoError(t, err)
	assert.Len(t, signers, 1)
}

func TestPayrollRepository_ReferenceDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	empty := NewPayrollRepository(NewStore(nil))
	_, err := empty.GetReferenceDate(ctx)
	assert.ErrorIs(t, err, payroll.ErrReferenceDateNotSet)

	seeded := NewPayrollRepository(newSeededStore(t))
	ref, err := seeded.GetReferenceDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, ref.Day())
}

func TestPayrollRepository_CreatePeriodRecordRejectsDuplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPayrollRepository(newSeededStore(t))
	rec := period.Record{Identifier: "2024-07-Q2", Status: period.StatusClosed, ClosedBy: "101"}

	require.NoError(t, repo.CreatePeriodRecord(ctx, rec))
	err := repo.CreatePeriodRecord(ctx, rec)

	assert.ErrorIs(t, err, payroll.ErrPeriodAlreadyClosed)
	records, err := repo.ListPeriodRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceRepository_ListByMonth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewAttendanceRepository(newSeededStore(t))

	logs, err := repo.ListByMonth(ctx, "3", "2024-07")
	require.NoError(t, err)
	assert.Len(t, logs, 4)

	day, err := repo.GetDay(ctx, "3", "2024-07-22")
	require.NoError(t, err)
	assert.Nil(t, day.ClockIn)
	assert.Equal(t, "3", day.EmployeeID)
}
