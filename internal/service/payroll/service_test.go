package payroll

import (
	"bytes"
	"context"
	"testing"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc   payroll.PayrollService
	users user.UserRepository
}

func setupTest(t *testing.T) testEnv {
	t.Helper()
	store := memory.NewStore(fixtures.MustDefault())
	return testEnv{
		svc: NewPayrollService(
			database.NoopTxManager{},
			payroll.NewCalculator(payroll.FlatRatePolicy),
			memory.NewPayrollRepository(store),
			memory.NewEmployeeRepository(store),
			memory.NewIncidentRepository(store),
			memory.NewBranchRepository(store),
		),
		users: memory.NewUserRepository(store),
	}
}

func (e testEnv) actor(t *testing.T, id string) user.User {
	t.Helper()
	u, err := e.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPayrollService_CurrentPeriod(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	current, err := env.svc.CurrentPeriod(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2024-07-Q2", current.Identifier)
	assert.Equal(t, "16 - 31 de Julio", current.DisplayRange)
	assert.Equal(t, "2024-07-20", current.ReferenceDate)
	assert.Equal(t, "Abierta", current.Status)
}

func TestPayrollService_GetEmployeePayroll_BonusScenario(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)

	// Act
	res, err := env.svc.GetEmployeePayroll(context.Background(), env.actor(t, "101"), "2")

	// Assert
	require.NoError(t, err)
	assert.True(t, res.BaseSalary.Equal(dec("24000")))
	assert.True(t, res.TotalEarnings.Equal(dec("26500")))
	assert.True(t, res.ISRDeduction.Equal(dec("5300")))
	assert.True(t, res.IMSSDeduction.Equal(dec("1325")))
	assert.True(t, res.TotalDeductions.Equal(dec("6625")))
	assert.True(t, res.NetPay.Equal(dec("19875")))
	assert.Len(t, res.Earnings, 1)
	assert.Empty(t, res.Deductions)
	assert.False(t, res.NegativeNetPay)
}

func TestPayrollService_GetEmployeePayroll_AdvanceScenario(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	res, err := env.svc.GetEmployeePayroll(context.Background(), env.actor(t, "102"), "5")

	require.NoError(t, err)
	assert.True(t, res.TotalEarnings.Equal(dec("11000")))
	assert.True(t, res.IncidentDeductions.Equal(dec("1500")))
	assert.True(t, res.TotalDeductions.Equal(dec("4250")))
	assert.True(t, res.NetPay.Equal(dec("6750")))
	assert.Len(t, res.Deductions, 1)
}

func TestPayrollService_GetEmployeePayroll_OutOfScope(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	_, err := env.svc.GetEmployeePayroll(context.Background(), env.actor(t, "102"), "3")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_ListProcessing_ScopeAndProgress(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	admin := env.actor(t, "101")
	ctx := context.Background()

	// Act
	before, err := env.svc.ListProcessing(ctx, admin, payroll.ProcessingFilter{})
	require.NoError(t, err)
	_, err = env.svc.PayEmployee(ctx, admin, "1")
	require.NoError(t, err)
	_, err = env.svc.PayEmployee(ctx, admin, "2")
	require.NoError(t, err)
	after, err := env.svc.ListProcessing(ctx, admin, payroll.ProcessingFilter{})
	require.NoError(t, err)

	// Assert
	assert.Len(t, before.Employees, 5)
	assert.Equal(t, 5, before.PendingCount)
	assert.True(t, before.Progress.IsZero())

	assert.Equal(t, 2, after.PaidCount)
	assert.Equal(t, 3, after.PendingCount)
	assert.True(t, after.Progress.Equal(dec("40")))
	assert.Equal(t, "2024-07-Q2", after.Period.Identifier)
}

func TestPayrollService_ListProcessing_ManagerAndPagination(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()

	scoped, err := env.svc.ListProcessing(ctx, env.actor(t, "102"), payroll.ProcessingFilter{})
	require.NoError(t, err)
	assert.Len(t, scoped.Employees, 3)
	for _, row := range scoped.Employees {
		assert.Contains(t, []string{"2", "3"}, row.BranchID)
	}
	assert.True(t, scoped.TotalNetPay.Equal(dec("19875").Add(dec("6750")).Add(scoped.Employees[1].Payroll.NetPay)))

	paged, err := env.svc.ListProcessing(ctx, env.actor(t, "101"), payroll.ProcessingFilter{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, paged.Employees, 1)
	assert.Equal(t, 5, paged.Pagination.Total)
	assert.Equal(t, 5, paged.PendingCount)
}

func TestPayrollService_PayEmployee_IsIdempotent(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	admin := env.actor(t, "101")
	ctx := context.Background()

	first, err := env.svc.PayEmployee(ctx, admin, "3")
	require.NoError(t, err)
	second, err := env.svc.PayEmployee(ctx, admin, "3")
	require.NoError(t, err)

	assert.Equal(t, first.PaidAt, second.PaidAt)
	assert.Equal(t, "2024-07-Q2", first.PeriodID)
}

func TestPayrollService_PayEmployee_Rejections(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()

	_, err := env.svc.PayEmployee(ctx, env.actor(t, "101"), "6")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotActive)

	_, err = env.svc.PayEmployee(ctx, env.actor(t, "102"), "1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_ClosePeriod_RequiresSuperAdmin(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	_, err := env.svc.ClosePeriod(context.Background(), env.actor(t, "102"))

	assert.ErrorIs(t, err, user.ErrSuperAdminRequired)
}

func TestPayrollService_ClosePeriod_RequiresEveryonePaid(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	admin := env.actor(t, "101")
	ctx := context.Background()
	for _, id := range []string{"1", "2", "3", "4"} {
		_, err := env.svc.PayEmployee(ctx, admin, id)
		require.NoError(t, err)
	}

	_, err := env.svc.ClosePeriod(ctx, admin)

	assert.ErrorIs(t, err, payroll.ErrPayrollIncomplete)
	current, err := env.svc.CurrentPeriod(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-Q2", current.Identifier)
}

func TestPayrollService_ClosePeriod_AdvancesAndStartsEmpty(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	admin := env.actor(t, "101")
	ctx := context.Background()
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		_, err := env.svc.PayEmployee(ctx, admin, id)
		require.NoError(t, err)
	}

	// Act
	closed, err := env.svc.ClosePeriod(ctx, admin)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2024-07-Q2", closed.Closed.Identifier)
	assert.Equal(t, "Cerrada", closed.Closed.Status)
	assert.Equal(t, 5, closed.Closed.EmployeesPaid)
	assert.Equal(t, "2024-08-Q1", closed.Closed.NextIdentifier)
	assert.Equal(t, "2024-08-Q1", closed.Next.Identifier)
	assert.Equal(t, "2024-08-01", closed.Next.ReferenceDate)

	history, err := env.svc.ListPeriodHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "2024-07-Q2", history[0].Identifier)

	list, err := env.svc.ListProcessing(ctx, admin, payroll.ProcessingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, list.PaidCount)
	assert.Equal(t, "2024-08-Q1", list.Period.Identifier)

	res, err := env.svc.GetEmployeePayroll(ctx, admin, "2")
	require.NoError(t, err)
	assert.Empty(t, res.Earnings)
	assert.True(t, res.NetPay.Equal(dec("18000")))
}

func TestPayrollService_ClosePeriod_AlreadyRecorded(t *testing.T) {
	t.Parallel()

	// Setup
	store := memory.NewStore(fixtures.MustDefault())
	payrollRepo := memory.NewPayrollRepository(store)
	svc := NewPayrollService(
		database.NoopTxManager{},
		payroll.NewCalculator(payroll.FlatRatePolicy),
		payrollRepo,
		memory.NewEmployeeRepository(store),
		memory.NewIncidentRepository(store),
		memory.NewBranchRepository(store),
	)
	admin, err := memory.NewUserRepository(store).GetByID(context.Background(), "101")
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, payrollRepo.CreatePeriodRecord(ctx, period.Record{Identifier: "2024-07-Q2", Status: period.StatusClosed}))
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		_, err := svc.PayEmployee(ctx, admin, id)
		require.NoError(t, err)
	}

	// Act
	_, err = svc.ClosePeriod(ctx, admin)

	// Assert
	assert.ErrorIs(t, err, payroll.ErrPeriodAlreadyClosed)
	current, err := svc.CurrentPeriod(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-Q2", current.Identifier)
	history, err := svc.ListPeriodHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPayrollService_SignPayslip(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	self := env.actor(t, "103")
	ctx := context.Background()

	// Act
	first, err := env.svc.SignPayslip(ctx, self, payroll.SignPayslipRequest{})
	require.NoError(t, err)
	second, err := env.svc.SignPayslip(ctx, self, payroll.SignPayslipRequest{})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "3", first.EmployeeID)
	assert.Equal(t, "2024-07-Q2", first.PeriodID)
	assert.False(t, first.AlreadySigned)
	assert.True(t, second.AlreadySigned)
	assert.Equal(t, first.SignedAt, second.SignedAt)

	list, err := env.svc.ListProcessing(ctx, env.actor(t, "101"), payroll.ProcessingFilter{})
	require.NoError(t, err)
	for _, row := range list.Employees {
		assert.Equal(t, row.EmployeeID == "3", row.Signed, row.EmployeeID)
	}
}

func TestPayrollService_SignPayslip_Rejections(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()

	_, err := env.svc.SignPayslip(ctx, env.actor(t, "101"), payroll.SignPayslipRequest{})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	_, err = env.svc.SignPayslip(ctx, env.actor(t, "103"), payroll.SignPayslipRequest{PeriodID: "2024-7"})
	assert.Error(t, err)

	explicit, err := env.svc.SignPayslip(ctx, env.actor(t, "103"), payroll.SignPayslipRequest{PeriodID: "2024-07-Q1"})
	require.NoError(t, err)
	assert.Equal(t, "2024-07-Q1", explicit.PeriodID)
}

func TestPayrollService_PayslipPDF(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()

	out, err := env.svc.PayslipPDF(ctx, env.actor(t, "103"), "3")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	_, err = env.svc.PayslipPDF(ctx, env.actor(t, "103"), "2")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
