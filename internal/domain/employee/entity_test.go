package employee

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_SetGrossSalary_RecomputesDailySalary(t *testing.T) {
	t.Parallel()

	e := Employee{}
	for _, gross := range []string{"48000", "55000", "22000.50", "1"} {
		g := decimal.RequireFromString(gross)
		e.SetGrossSalary(g)

		assert.True(t, e.GrossSalary.Equal(g))
		assert.True(t, e.DailySalary.Equal(g.Div(decimal.NewFromInt(30))), "gross %s", gross)
	}

	e.SetGrossSalary(decimal.NewFromInt(48000))
	assert.Equal(t, "1600", e.DailySalary.String())
}

func TestEmployee_Archive_IsOneWay(t *testing.T) {
	t.Parallel()

	// Setup
	e := Employee{Status: StatusActive}
	at := time.Date(2024, time.July, 20, 10, 0, 0, 0, time.UTC)

	// Act
	err := e.Archive(at)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StatusArchived, e.Status)
	assert.False(t, e.IsActive())
	require.NotNil(t, e.ArchivedAt)
	assert.Equal(t, at, *e.ArchivedAt)

	err = e.Archive(at.Add(time.Hour))
	assert.ErrorIs(t, err, ErrEmployeeAlreadyArchived)
	assert.Equal(t, at, *e.ArchivedAt)
}

func TestEmployee_WasActiveOn(t *testing.T) {
	t.Parallel()

	archived := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	e := Employee{
		HireDate:   time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC),
		ArchivedAt: &archived,
	}

	assert.False(t, e.WasActiveOn(time.Date(2021, time.August, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, e.WasActiveOn(time.Date(2022, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, e.WasActiveOn(archived))
	assert.False(t, e.WasActiveOn(time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)))
}

func TestEmployeeFilter_Validate(t *testing.T) {
	t.Parallel()

	ok := EmployeeFilter{SortBy: "name", Status: "Activo"}
	assert.NoError(t, ok.Validate())

	bad := EmployeeFilter{SortBy: "salary", Status: "Inactive"}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sort_by")
	assert.Contains(t, err.Error(), "status")

	params := (&EmployeeFilter{}).Params()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.PageSize)
	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
}
