package incident

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) (incident.IncidentService, func(id string) user.User) {
	t.Helper()
	store := memory.NewStore(fixtures.MustDefault())
	svc := NewIncidentService(
		memory.NewIncidentRepository(store),
		memory.NewEmployeeRepository(store),
		memory.NewPayrollRepository(store),
	)
	users := memory.NewUserRepository(store)
	actor := func(id string) user.User {
		u, err := users.GetByID(context.Background(), id)
		require.NoError(t, err)
		return u
	}
	return svc, actor
}

func TestIncidentService_Create_UsesCurrentPeriod(t *testing.T) {
	t.Parallel()

	// Setup
	svc, actor := setupTest(t)
	req := incident.CreateIncidentRequest{
		EmployeeID: "4",
		Kind:       "Horas Extra",
		Amount:     decimal.NewFromInt(1200),
		Comment:    "  Inventario semestral ",
	}

	// Act
	created, err := svc.Create(context.Background(), actor("102"), req)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-07-Q2", created.PeriodID)
	assert.Equal(t, "1200", created.Amount.String())
	assert.Equal(t, "Inventario semestral", created.Comment)
	assert.Equal(t, "102", created.CreatedBy)
}

func TestIncidentService_Create_AbsenceIgnoresClientAmount(t *testing.T) {
	t.Parallel()

	svc, actor := setupTest(t)

	created, err := svc.Create(context.Background(), actor("101"), incident.CreateIncidentRequest{
		EmployeeID: "2",
		Kind:       "Falta (Deducción)",
		Amount:     decimal.NewFromInt(99999),
		Comment:    "Falta injustificada",
	})

	require.NoError(t, err)
	assert.Equal(t, "-1600", created.Amount.String())
}

func TestIncidentService_Create_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actorID string
		req     incident.CreateIncidentRequest
		wantErr error
	}{
		{
			name:    "out of scope employee",
			actorID: "102",
			req:     incident.CreateIncidentRequest{EmployeeID: "1", Kind: "Bono", Amount: decimal.NewFromInt(100), Comment: "x"},
			wantErr: employee.ErrEmployeeNotFound,
		},
		{
			name:    "archived employee",
			actorID: "101",
			req:     incident.CreateIncidentRequest{EmployeeID: "6", Kind: "Bono", Amount: decimal.NewFromInt(100), Comment: "x"},
			wantErr: employee.ErrEmployeeNotActive,
		},
		{
			name:    "unknown employee",
			actorID: "101",
			req:     incident.CreateIncidentRequest{EmployeeID: "404", Kind: "Bono", Amount: decimal.NewFromInt(100), Comment: "x"},
			wantErr: employee.ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, actor := setupTest(t)

			_, err := svc.Create(context.Background(), actor(tt.actorID), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIncidentService_Create_ZeroAmountIsInvalid(t *testing.T) {
	t.Parallel()

	svc, actor := setupTest(t)

	_, err := svc.Create(context.Background(), actor("101"), incident.CreateIncidentRequest{
		EmployeeID: "2",
		Kind:       "Bono",
		Amount:     decimal.Zero,
		Comment:    "sin monto",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "amount")
}

func TestIncidentService_ListByEmployee(t *testing.T) {
	t.Parallel()

	svc, actor := setupTest(t)
	ctx := context.Background()

	all, err := svc.ListByEmployee(ctx, actor("101"), incident.ListIncidentRequest{EmployeeID: "2"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	current, err := svc.ListByEmployee(ctx, actor("101"), incident.ListIncidentRequest{EmployeeID: "2", PeriodID: "2024-07-Q2"})
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "2500", current[0].Amount.String())

	_, err = svc.ListByEmployee(ctx, actor("103"), incident.ListIncidentRequest{EmployeeID: "2"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.ListByEmployee(ctx, actor("101"), incident.ListIncidentRequest{EmployeeID: "2", PeriodID: "julio"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
