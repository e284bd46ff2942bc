package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidRole             = errors.New("invalid role")
	ErrBranchAssignmentMissing = errors.New("branch manager requires at least one assigned branch")
	ErrEmployeeLinkMissing     = errors.New("employee user requires a linked employee")
	ErrCannotDeleteSelf        = errors.New("cannot delete the current user")
	ErrSuperAdminRequired      = errors.New("super admin access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
