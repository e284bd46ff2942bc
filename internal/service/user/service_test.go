package user

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	svc   user.UserService
	users user.UserRepository
}

func setupTest(t *testing.T) testEnv {
	t.Helper()
	store := memory.NewStore(fixtures.MustDefault())
	users := memory.NewUserRepository(store)
	return testEnv{
		svc:   NewUserService(users, memory.NewBranchRepository(store), memory.NewEmployeeRepository(store)),
		users: users,
	}
}

func ptr[T any](v T) *T { return &v }

func TestUserService_List(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	users, err := env.svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Admin Nómina", users[0].Name)
	assert.Equal(t, "Gerente Sucursal", users[1].Name)
	assert.Equal(t, []string{"2", "3"}, users[1].AssignedBranchIDs)
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	ctx := context.Background()

	// Act
	created, err := env.svc.Create(ctx, user.CreateUserRequest{
		Name:              "Nueva Gerente",
		Email:             "Nueva@Nomina.pro",
		Password:          "secreto123",
		Role:              string(user.RoleBranchManager),
		AssignedBranchIDs: []string{"1"},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "nueva@nomina.pro", created.Email)
	assert.Equal(t, "Gerente de Sucursal", created.RoleLabel)

	stored, err := env.users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "secreto123", *stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("secreto123")))
}

func TestUserService_Create_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     user.CreateUserRequest
		wantErr error
	}{
		{
			name:    "duplicate email",
			req:     user.CreateUserRequest{Name: "X", Email: "ADMIN@nomina.pro", Password: "password123", Role: "super_admin"},
			wantErr: user.ErrUserEmailExists,
		},
		{
			name:    "unknown branch",
			req:     user.CreateUserRequest{Name: "X", Email: "x@nomina.pro", Password: "password123", Role: "gerente_sucursal", AssignedBranchIDs: []string{"2", "99"}},
			wantErr: branch.ErrBranchNotFound,
		},
		{
			name:    "unknown employee",
			req:     user.CreateUserRequest{Name: "X", Email: "x@nomina.pro", Password: "password123", Role: "empleado", EmployeeID: ptr("99")},
			wantErr: employee.ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := setupTest(t)

			_, err := env.svc.Create(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_Create_ScopeValidation(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	_, err := env.svc.Create(context.Background(), user.CreateUserRequest{
		Name: "X", Email: "x@nomina.pro", Password: "password123", Role: "gerente_sucursal",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "assigned_branch_ids", verrs[0].Field)
}

func TestUserService_Update_RoleChangeDropsStaleScope(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	ctx := context.Background()

	// Act
	updated, err := env.svc.Update(ctx, user.UpdateUserRequest{
		ID:         "102",
		Role:       ptr(string(user.RoleEmployee)),
		EmployeeID: ptr("2"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, string(user.RoleEmployee), updated.Role)
	assert.Empty(t, updated.AssignedBranchIDs)
	require.NotNil(t, updated.EmployeeID)
	assert.Equal(t, "2", *updated.EmployeeID)
}

func TestUserService_Update_EmailAndPassword(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()

	_, err := env.svc.Update(ctx, user.UpdateUserRequest{ID: "103", Email: ptr("manager@nomina.pro")})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	// Keeping its own email is not a conflict.
	_, err = env.svc.Update(ctx, user.UpdateUserRequest{ID: "103", Email: ptr("sofia.martinez@example.com"), Password: ptr("nuevo-secreto")})
	require.NoError(t, err)

	stored, err := env.users.GetByID(ctx, "103")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("nuevo-secreto")))

	_, err = env.svc.Update(ctx, user.UpdateUserRequest{ID: "999", Name: ptr("X")})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()
	admin := user.User{ID: "101", Role: user.RoleSuperAdmin}

	assert.ErrorIs(t, env.svc.Delete(ctx, admin, "101"), user.ErrCannotDeleteSelf)
	require.NoError(t, env.svc.Delete(ctx, admin, "103"))
	assert.ErrorIs(t, env.svc.Delete(ctx, admin, "103"), user.ErrUserNotFound)

	users, err := env.svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
