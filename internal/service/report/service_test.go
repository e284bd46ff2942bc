package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type testEnv struct {
	svc   report.ReportService
	users user.UserRepository
}

func setupTest(t *testing.T) testEnv {
	t.Helper()
	store := memory.NewStore(fixtures.MustDefault())
	return testEnv{
		svc: NewReportService(
			memory.NewEmployeeRepository(store),
			memory.NewIncidentRepository(store),
			memory.NewBranchRepository(store),
			memory.NewPayrollRepository(store),
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

func TestReportService_Workforce_DefaultWindow(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)

	// Act
	resp, err := env.svc.Workforce(context.Background(), env.actor(t, "101"), report.WorkforceRequest{})

	// Assert
	require.NoError(t, err)
	require.Len(t, resp.Months, 12)
	assert.Equal(t, "2023-08", resp.Months[0].Month)
	last := resp.Months[11]
	assert.Equal(t, "2024-07", last.Month)
	assert.Equal(t, "Julio 2024", last.Label)
	assert.Equal(t, 5, last.Headcount)
	assert.True(t, last.Cost.Equal(decimal.NewFromInt(208350)), last.Cost.String())
	assert.True(t, last.Bonuses.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 5, resp.KPIs.FinalHeadcount)
	assert.Equal(t, 1, resp.KPIs.TotalTerminations)
	assert.Equal(t, 1, resp.Months[9].Terminations)
}

func TestReportService_Workforce_BranchAndScope(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()

	manager, err := env.svc.Workforce(ctx, env.actor(t, "102"), report.WorkforceRequest{Months: 1})
	require.NoError(t, err)
	require.Len(t, manager.Months, 1)
	assert.Equal(t, 3, manager.Months[0].Headcount)
	assert.NotContains(t, manager.Months[0].CostByBranch, "1")

	branchOnly, err := env.svc.Workforce(ctx, env.actor(t, "101"), report.WorkforceRequest{Months: 1, BranchID: "2"})
	require.NoError(t, err)
	assert.Equal(t, 2, branchOnly.Months[0].Headcount)
	assert.Equal(t, "2", branchOnly.BranchID)

	_, err = env.svc.Workforce(ctx, env.actor(t, "101"), report.WorkforceRequest{BranchID: "9"})
	assert.ErrorIs(t, err, branch.ErrBranchNotFound)

	_, err = env.svc.Workforce(ctx, env.actor(t, "101"), report.WorkforceRequest{Months: 36})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestReportService_WorkforceSpreadsheet(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)

	// Act
	out, err := env.svc.WorkforceSpreadsheet(context.Background(), env.actor(t, "101"), report.WorkforceRequest{Months: 3})

	// Assert
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{monthsSheet, kpiSheet}, f.GetSheetList())
	header, err := f.GetCellValue(monthsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Mes", header)
	branchHeader, err := f.GetCellValue(monthsSheet, "G1")
	require.NoError(t, err)
	assert.Equal(t, "Costo Corporativo CDMX", branchHeader)
	label, err := f.GetCellValue(monthsSheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Julio 2024", label)
	final, err := f.GetCellValue(kpiSheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "5", final)
}

func TestReportService_Headcount(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()

	all, err := env.svc.Headcount(ctx, env.actor(t, "101"))
	require.NoError(t, err)
	assert.Equal(t, 5, all.TotalActive)
	assert.Equal(t, 1, all.TotalArchived)
	require.Len(t, all.Branches, 3)
	assert.Equal(t, report.BranchHeadcountResponse{BranchID: "1", BranchName: "Corporativo CDMX", Active: 2, Archived: 1}, all.Branches[0])

	scoped, err := env.svc.Headcount(ctx, env.actor(t, "102"))
	require.NoError(t, err)
	assert.Equal(t, 3, scoped.TotalActive)
	assert.Len(t, scoped.Branches, 2)
}
