package access

import (
	"testing"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

var (
	admin   = user.User{ID: "101", Role: user.RoleSuperAdmin}
	manager = user.User{ID: "102", Role: user.RoleBranchManager, AssignedBranchIDs: []string{"2", "3"}}
	worker  = user.User{ID: "103", Role: user.RoleEmployee, EmployeeID: strPtr("3")}

	inCDMX        = employee.Employee{ID: "1", BranchID: "1", Status: employee.StatusActive}
	inMonterrey   = employee.Employee{ID: "2", BranchID: "2", Status: employee.StatusActive}
	self          = employee.Employee{ID: "3", BranchID: "1", Status: employee.StatusActive}
	inGuadalajara = employee.Employee{ID: "4", BranchID: "3", Status: employee.StatusActive}
	archived      = employee.Employee{ID: "6", BranchID: "2", Status: employee.StatusArchived}
)

func TestIsVisible_BranchManagerScenario(t *testing.T) {
	t.Parallel()

	assert.False(t, IsVisible(manager, inCDMX))
	assert.True(t, IsVisible(manager, inGuadalajara))
	assert.True(t, IsVisible(admin, inCDMX))
	assert.True(t, IsVisible(admin, inGuadalajara))
}

func TestIsVisible_Roles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		u    user.User
		e    employee.Employee
		want bool
	}{
		{"admin sees archived", admin, archived, true},
		{"manager sees own branch archived", manager, archived, true},
		{"employee sees self", worker, self, true},
		{"employee does not see colleague", worker, inCDMX, false},
		{"employee without link sees nothing", user.User{Role: user.RoleEmployee}, self, false},
		{"manager without branches sees nothing", user.User{Role: user.RoleBranchManager}, inMonterrey, false},
		{"unknown role sees nothing", user.User{Role: user.Role("auditor")}, inMonterrey, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsVisible(tt.u, tt.e))
		})
	}
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	t.Parallel()

	all := []employee.Employee{inCDMX, inMonterrey, self, inGuadalajara, archived}

	got := Filter(manager, all)

	assert.Equal(t, []employee.Employee{inMonterrey, inGuadalajara, archived}, got)
	assert.Len(t, all, 5)
	assert.Equal(t, 3, Count(manager, all))
	assert.Equal(t, 5, Count(admin, all))
	assert.Equal(t, 1, Count(worker, all))
}

func TestFilterActive_DropsArchived(t *testing.T) {
	t.Parallel()

	all := []employee.Employee{inCDMX, inMonterrey, self, inGuadalajara, archived}

	assert.Equal(t, []employee.Employee{inMonterrey, inGuadalajara}, FilterActive(manager, all))
	assert.Len(t, FilterActive(admin, all), 4)
}

func TestGuard(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Guard(manager, inMonterrey))
	assert.ErrorIs(t, Guard(manager, inCDMX), employee.ErrEmployeeNotFound)
	assert.NoError(t, Guard(manager, archived))
	assert.ErrorIs(t, GuardActive(manager, archived), employee.ErrEmployeeNotActive)
	assert.ErrorIs(t, GuardActive(worker, inCDMX), employee.ErrEmployeeNotFound)
}
