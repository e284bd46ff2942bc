package user

import "time"

type Role string

const (
	RoleSuperAdmin    Role = "super_admin"      // Full access to every branch
	RoleBranchManager Role = "gerente_sucursal" // Scoped to assigned branches
	RoleEmployee      Role = "empleado"         // Self-service over one employee record
)

// Roles lists the closed set of roles.
var Roles = []Role{RoleSuperAdmin, RoleBranchManager, RoleEmployee}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleBranchManager, RoleEmployee:
		return true
	}
	return false
}

// Label is the display name used in settings screens.
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Administrador"
	case RoleBranchManager:
		return "Gerente de Sucursal"
	case RoleEmployee:
		return "Empleado"
	}
	return string(r)
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Only for RoleBranchManager
	AssignedBranchIDs []string
	// Only for RoleEmployee
	EmployeeID *string
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

func (u *User) IsBranchManager() bool {
	return u.Role == RoleBranchManager
}

func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

// ManagesBranch reports whether branchID is in the user's assigned set.
func (u *User) ManagesBranch(branchID string) bool {
	for _, id := range u.AssignedBranchIDs {
		if id == branchID {
			return true
		}
	}
	return false
}

// OwnsEmployee reports whether the user is linked to employeeID.
func (u *User) OwnsEmployee(employeeID string) bool {
	return u.EmployeeID != nil && *u.EmployeeID == employeeID
}
