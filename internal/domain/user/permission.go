package user

type Permission string

const (
	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"

	// Employee Management
	PermissionEmployeeRead   Permission = "employee.read"
	PermissionEmployeeManage Permission = "employee.manage"

	// Incidents and Bonuses
	PermissionIncidentCreate Permission = "incident.create"
	PermissionBonusAssign    Permission = "bonus.assign"
	PermissionBonusManage    Permission = "bonus.manage"

	// Payroll
	PermissionPayrollProcess Permission = "payroll.process"
	PermissionPayrollClose   Permission = "payroll.close"

	// Attendance and Vacations
	PermissionAttendanceView Permission = "attendance.view"
	PermissionVacationReview Permission = "vacation.review"

	// Reports
	PermissionReportView Permission = "report.view"

	// Settings
	PermissionUserManage   Permission = "user.manage"
	PermissionBranchManage Permission = "branch.manage"

	// Self Service
	PermissionSelfService Permission = "self.service"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionDashboardView,
		PermissionEmployeeRead,
		PermissionEmployeeManage,
		PermissionIncidentCreate,
		PermissionBonusAssign,
		PermissionBonusManage,
		PermissionPayrollProcess,
		PermissionPayrollClose,
		PermissionAttendanceView,
		PermissionVacationReview,
		PermissionReportView,
		PermissionUserManage,
		PermissionBranchManage,
	},
	RoleBranchManager: {
		// Everything a manager sees is further narrowed to assigned branches
		PermissionDashboardView,
		PermissionEmployeeRead,
		PermissionIncidentCreate,
		PermissionBonusAssign,
		PermissionPayrollProcess,
		PermissionAttendanceView,
		PermissionVacationReview,
		PermissionReportView,
	},
	RoleEmployee: {
		PermissionSelfService,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
