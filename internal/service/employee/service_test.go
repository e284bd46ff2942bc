package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc   employee.EmployeeService
	users user.UserRepository
}

func setupTest(t *testing.T) testEnv {
	t.Helper()
	store := memory.NewStore(fixtures.MustDefault())
	return testEnv{
		svc: NewEmployeeService(
			memory.NewEmployeeRepository(store),
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

func employeeIDs(list []employee.EmployeeResponse) []string {
	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ID)
	}
	return ids
}

func strPtr(s string) *string { return &s }

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		ExternalID:  "EMP-100",
		Name:        "Valeria Ruiz Soto",
		Email:       "valeria.ruiz@example.com",
		RFC:         "RUSV930707DDD",
		CURP:        "RUSV930707MDFZTL07",
		NSS:         "78901234567",
		CLABE:       "012180078901234567",
		BranchID:    "2",
		Position:    "Contadora",
		Rank:        "Analista",
		GrossSalary: decimal.NewFromInt(36000),
		HireDate:    "2024-07-01",
	}
}

func TestEmployeeService_ListEmployees_SuperAdminSeesEveryone(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	admin := env.actor(t, "101")

	// Act
	resp, err := env.svc.ListEmployees(context.Background(), admin, employee.EmployeeFilter{SortBy: "name", SortOrder: "asc"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Pagination.Total)
	assert.Len(t, resp.Employees, 6)
	assert.Equal(t, "Ana García Pérez", resp.Employees[0].Name)
}

func TestEmployeeService_ListEmployees_ManagerSeesAssignedBranchesOnly(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	manager := env.actor(t, "102")

	// Act
	resp, err := env.svc.ListEmployees(context.Background(), manager, employee.EmployeeFilter{SortBy: "name", SortOrder: "asc"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5", "4"}, employeeIDs(resp.Employees))
	for _, e := range resp.Employees {
		assert.Contains(t, []string{"2", "3"}, e.BranchID)
	}
}

func TestEmployeeService_ListEmployees_EmployeeSeesOnlySelf(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	self := env.actor(t, "103")

	resp, err := env.svc.ListEmployees(context.Background(), self, employee.EmployeeFilter{})

	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, employeeIDs(resp.Employees))
}

func TestEmployeeService_ListEmployees_FiltersAndPaginates(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	admin := env.actor(t, "101")
	ctx := context.Background()

	archived, err := env.svc.ListEmployees(ctx, admin, employee.EmployeeFilter{Status: "Archivado"})
	require.NoError(t, err)
	assert.Equal(t, []string{"6"}, employeeIDs(archived.Employees))

	byQuery, err := env.svc.ListEmployees(ctx, admin, employee.EmployeeFilter{Query: "emp-00"})
	require.NoError(t, err)
	assert.Len(t, byQuery.Employees, 6)

	byName, err := env.svc.ListEmployees(ctx, admin, employee.EmployeeFilter{Query: "elena"})
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, employeeIDs(byName.Employees))

	byBranch, err := env.svc.ListEmployees(ctx, admin, employee.EmployeeFilter{BranchID: "1", SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "6", "3"}, employeeIDs(byBranch.Employees))

	page2, err := env.svc.ListEmployees(ctx, admin, employee.EmployeeFilter{Page: 2, PageSize: 4, SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Len(t, page2.Employees, 2)
	assert.Equal(t, 2, page2.Pagination.TotalPages)
	assert.Equal(t, 2, page2.Pagination.Page)
}

func TestEmployeeService_ListEmployees_InvalidFilter(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	_, err := env.svc.ListEmployees(context.Background(), env.actor(t, "101"), employee.EmployeeFilter{SortBy: "rfc"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestEmployeeService_GetEmployee_OutOfScopeIsNotFound(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	manager := env.actor(t, "102")

	_, err := env.svc.GetEmployee(context.Background(), manager, "1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	got, err := env.svc.GetEmployee(context.Background(), manager, "2")
	require.NoError(t, err)
	assert.Equal(t, "1600", got.DailySalary.String())
}

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	req := validCreateRequest()

	// Act
	created, err := env.svc.CreateEmployee(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Activo", created.Status)
	assert.Equal(t, "1200", created.DailySalary.String())
	assert.Equal(t, "2024-07-01", created.HireDate)

	got, err := env.svc.GetEmployee(context.Background(), env.actor(t, "101"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ExternalID, got.ExternalID)
}

func TestEmployeeService_CreateEmployee_Conflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *employee.CreateEmployeeRequest)
		wantErr error
	}{
		{"duplicate external id", func(r *employee.CreateEmployeeRequest) { r.ExternalID = "EMP-001" }, employee.ErrExternalIDExists},
		{"duplicate email", func(r *employee.CreateEmployeeRequest) { r.Email = "ana.garcia@example.com" }, employee.ErrEmailExists},
		{"unknown branch", func(r *employee.CreateEmployeeRequest) { r.BranchID = "99" }, branch.ErrBranchNotFound},
		{"future hire date", func(r *employee.CreateEmployeeRequest) { r.HireDate = "2024-07-21" }, employee.ErrFutureHireDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := setupTest(t)
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := env.svc.CreateEmployee(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEmployeeService_CreateEmployee_ValidationError(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	req := validCreateRequest()
	req.NSS = "123"
	req.GrossSalary = decimal.Zero

	_, err := env.svc.CreateEmployee(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "nss")
	assert.Contains(t, fields, "gross_salary")
}

func TestEmployeeService_UpdateEmployee_SalaryEditRecomputesDaily(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	admin := env.actor(t, "101")
	gross := decimal.NewFromInt(60000)

	// Act
	updated, err := env.svc.UpdateEmployee(context.Background(), admin, employee.UpdateEmployeeRequest{
		ID:          "2",
		GrossSalary: &gross,
		Position:    strPtr("Líder Técnico"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2000", updated.DailySalary.String())
	assert.Equal(t, "Líder Técnico", updated.Position)
	assert.Equal(t, "Carlos Rodríguez López", updated.Name)
}

func TestEmployeeService_UpdateEmployee_ScopeAndUniqueness(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := context.Background()

	_, err := env.svc.UpdateEmployee(ctx, env.actor(t, "102"), employee.UpdateEmployeeRequest{ID: "3", Name: strPtr("X")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = env.svc.UpdateEmployee(ctx, env.actor(t, "101"), employee.UpdateEmployeeRequest{ID: "2", Email: strPtr("ana.garcia@example.com")})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	same, err := env.svc.UpdateEmployee(ctx, env.actor(t, "101"), employee.UpdateEmployeeRequest{ID: "2", Email: strPtr("carlos.rodriguez@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "carlos.rodriguez@example.com", same.Email)
}

func TestEmployeeService_ArchiveEmployee(t *testing.T) {
	t.Parallel()

	// Setup
	env := setupTest(t)
	admin := env.actor(t, "101")
	ctx := context.Background()

	// Act
	archived, err := env.svc.ArchiveEmployee(ctx, admin, "5")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Archivado", archived.Status)
	assert.NotNil(t, archived.ArchivedAt)

	_, err = env.svc.ArchiveEmployee(ctx, admin, "5")
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyArchived)

	_, err = env.svc.ArchiveEmployee(ctx, env.actor(t, "103"), "1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
