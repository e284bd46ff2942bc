// Package access decides which employee records a user may see. The same
// predicate backs lists, counts, payroll and bonus targets, and reports.
package access

import (
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

// IsVisible reports whether u may see e.
func IsVisible(u user.User, e employee.Employee) bool {
	switch u.Role {
	case user.RoleSuperAdmin:
		return true
	case user.RoleBranchManager:
		// No assignment means an empty set, never universal access.
		return u.ManagesBranch(e.BranchID)
	case user.RoleEmployee:
		return u.OwnsEmployee(e.ID)
	default:
		return false
	}
}

// Filter returns the visible employees in their original order. The input
// slice is not modified.
func Filter(u user.User, employees []employee.Employee) []employee.Employee {
	out := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if IsVisible(u, e) {
			out = append(out, e)
		}
	}
	return out
}

// FilterActive narrows Filter to active employees, the only valid targets for
// payroll, bonuses, incidents and attendance.
func FilterActive(u user.User, employees []employee.Employee) []employee.Employee {
	out := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if e.IsActive() && IsVisible(u, e) {
			out = append(out, e)
		}
	}
	return out
}

func Count(u user.User, employees []employee.Employee) int {
	n := 0
	for _, e := range employees {
		if IsVisible(u, e) {
			n++
		}
	}
	return n
}

// Guard hides an out-of-scope employee behind ErrEmployeeNotFound.
func Guard(u user.User, e employee.Employee) error {
	if !IsVisible(u, e) {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// GuardActive is Guard plus the active-status requirement.
func GuardActive(u user.User, e employee.Employee) error {
	if err := Guard(u, e); err != nil {
		return err
	}
	if !e.IsActive() {
		return employee.ErrEmployeeNotActive
	}
	return nil
}
