package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, period.Location)
}

func newEmployee(id, branch string, gross int64, hired time.Time) employee.Employee {
	e := employee.Employee{ID: id, BranchID: branch, HireDate: hired, Status: employee.StatusActive}
	e.SetGrossSalary(decimal.NewFromInt(gross))
	return e
}

func TestBuildWorkforce_ThreeMonths(t *testing.T) {
	t.Parallel()

	// Setup
	veteran := newEmployee("1", "1", 50000, day(2020, time.March, 15))
	newHire := newEmployee("2", "2", 20000, day(2024, time.June, 3))
	leaver := newEmployee("3", "1", 30000, day(2021, time.January, 10))
	require.NoError(t, leaver.Archive(day(2024, time.June, 10)))

	incidents := []incident.Incident{
		{EmployeeID: "1", PeriodID: "2024-07-Q2", Kind: incident.KindBonus, Amount: decimal.NewFromInt(2500)},
		{EmployeeID: "2", PeriodID: "2024-07-Q1", Kind: incident.KindAdvance, Amount: decimal.NewFromInt(-1500)},
		{EmployeeID: "999", PeriodID: "2024-07-Q1", Kind: incident.KindBonus, Amount: decimal.NewFromInt(9999)},
	}

	// Act
	w := BuildWorkforce([]employee.Employee{veteran, newHire, leaver}, incidents, 2024, time.July, 3)

	// Assert
	require.Len(t, w.Months, 3)

	may, june, july := w.Months[0], w.Months[1], w.Months[2]
	assert.Equal(t, "Mayo 2024", may.Label)
	assert.Equal(t, 2, may.Headcount)
	assert.True(t, decimal.NewFromInt(80000).Equal(may.Cost))

	// Archived on the 10th, so gone by the mid-month probe.
	assert.Equal(t, 2, june.Headcount)
	assert.Equal(t, 1, june.Hires)
	assert.Equal(t, 1, june.Terminations)
	assert.True(t, decimal.NewFromInt(70000).Equal(june.Cost))

	assert.Equal(t, 2, july.Headcount)
	assert.True(t, decimal.NewFromInt(72500).Equal(july.Cost))
	assert.True(t, decimal.NewFromInt(2500).Equal(july.Bonuses))
	assert.True(t, decimal.NewFromInt(52500).Equal(july.CostByBranch["1"]))

	assert.True(t, decimal.NewFromInt(222500).Equal(w.KPIs.TotalCost))
	assert.True(t, decimal.NewFromInt(2500).Equal(w.KPIs.TotalBonuses))
	assert.Equal(t, 2, w.KPIs.FinalHeadcount)
	assert.True(t, decimal.NewFromInt(2).Equal(w.KPIs.AverageHeadcount))
	assert.Equal(t, 1, w.KPIs.TotalHires)
	assert.Equal(t, 1, w.KPIs.TotalTerminations)
}

func TestBuildWorkforce_CrossesYearBoundary(t *testing.T) {
	t.Parallel()

	w := BuildWorkforce(nil, nil, 2024, time.February, 4)

	require.Len(t, w.Months, 4)
	assert.Equal(t, 2023, w.Months[0].Year)
	assert.Equal(t, time.November, w.Months[0].Month)
	assert.Equal(t, time.February, w.Months[3].Month)
	assert.True(t, w.KPIs.AverageHeadcount.IsZero())
}

func TestHeadcountByBranch(t *testing.T) {
	t.Parallel()

	a := newEmployee("1", "2", 1, day(2020, time.January, 1))
	b := newEmployee("2", "1", 1, day(2020, time.January, 1))
	c := newEmployee("3", "2", 1, day(2020, time.January, 1))
	require.NoError(t, c.Archive(day(2023, time.January, 1)))

	got := HeadcountByBranch([]employee.Employee{a, b, c})

	assert.Equal(t, []BranchHeadcount{
		{BranchID: "1", Active: 1},
		{BranchID: "2", Active: 1, Archived: 1},
	}, got)
}

func TestWorkforceRequest_Validate(t *testing.T) {
	t.Parallel()

	req := WorkforceRequest{}
	require.NoError(t, req.Validate())
	assert.Equal(t, DefaultMonths, req.Months)

	req = WorkforceRequest{Months: 25}
	assert.Error(t, req.Validate())
}
