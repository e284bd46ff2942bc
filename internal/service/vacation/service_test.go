package vacation

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc   vacation.VacationService
	users user.UserRepository
}

func setupTest(t *testing.T) testEnv {
	t.Helper()
	store := memory.NewStore(fixtures.MustDefault())
	return testEnv{
		svc: NewVacationService(
			memory.NewVacationRepository(store),
			memory.NewEmployeeRepository(store),
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

func TestVacationService_GetEmployeeVacations_Stats(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)

	// Act
	resp, err := env.svc.GetEmployeeVacations(context.Background(), env.actor(t, "102"), "2")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Stats.YearsOfService)
	assert.Equal(t, 16, resp.Stats.AccruedDays)
	assert.Equal(t, 3, resp.Stats.TakenDays)
	assert.Equal(t, 13, resp.Stats.AvailableDays)
	assert.Len(t, resp.Requests, 2)
}

func TestVacationService_GetEmployeeVacations_OutOfScope(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	_, err := env.svc.GetEmployeeVacations(context.Background(), env.actor(t, "103"), "2")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestVacationService_Create(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	self := env.actor(t, "103")

	// Act
	created, err := env.svc.Create(context.Background(), self, vacation.CreateRequestRequest{
		StartDate: "2024-08-05",
		EndDate:   "2024-08-11",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "3", created.EmployeeID)
	assert.Equal(t, 5, created.DaysRequested)
	assert.Equal(t, "Pendiente", created.Status)
	assert.Equal(t, "2024-08-05", created.StartDate)
}

func TestVacationService_Create_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actorID string
		req     vacation.CreateRequestRequest
		wantErr error
	}{
		{"weekend only", "103", vacation.CreateRequestRequest{StartDate: "2024-08-03", EndDate: "2024-08-04"}, vacation.ErrNoWorkingDays},
		{"more than available", "103", vacation.CreateRequestRequest{StartDate: "2024-08-01", EndDate: "2024-08-14"}, vacation.ErrInsufficientDays},
		{"not an employee user", "101", vacation.CreateRequestRequest{StartDate: "2024-08-05", EndDate: "2024-08-06"}, user.ErrInsufficientPermissions},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := setupTest(t)

			_, err := env.svc.Create(context.Background(), env.actor(t, tt.actorID), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVacationService_Create_PendingDaysAreReserved(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	self := env.actor(t, "103")
	ctx := context.Background()

	_, err := env.svc.Create(ctx, self, vacation.CreateRequestRequest{StartDate: "2024-08-05", EndDate: "2024-08-09"})
	require.NoError(t, err)

	_, err = env.svc.Create(ctx, self, vacation.CreateRequestRequest{StartDate: "2024-08-12", EndDate: "2024-08-16"})

	assert.ErrorIs(t, err, vacation.ErrInsufficientDays)
}

func TestVacationService_Review(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	manager := env.actor(t, "102")
	ctx := context.Background()

	// Act
	approved, err := env.svc.Review(ctx, manager, vacation.ReviewRequest{ID: "3", Decision: "Aprobada"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Aprobada", approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "Gerente Sucursal", *approved.ReviewedBy)

	_, err = env.svc.Review(ctx, manager, vacation.ReviewRequest{ID: "3", Decision: "Rechazada"})
	assert.ErrorIs(t, err, vacation.ErrRequestAlreadyReviewed)

	stats, err := env.svc.GetEmployeeVacations(ctx, manager, "2")
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Stats.TakenDays)
}

func TestVacationService_Review_Rejections(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()

	_, err := env.svc.Review(ctx, env.actor(t, "103"), vacation.ReviewRequest{ID: "4", Decision: "Aprobada"})
	assert.ErrorIs(t, err, vacation.ErrSelfReviewForbidden)

	_, err = env.svc.Review(ctx, env.actor(t, "101"), vacation.ReviewRequest{ID: "99", Decision: "Aprobada"})
	assert.ErrorIs(t, err, vacation.ErrRequestNotFound)

	_, err = env.svc.Review(ctx, env.actor(t, "101"), vacation.ReviewRequest{ID: "4", Decision: "Pendiente"})
	assert.Error(t, err)
}
