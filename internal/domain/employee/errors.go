package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrExternalIDExists        = errors.New("external id already exists")
	ErrEmailExists             = errors.New("email already registered")
	ErrEmployeeAlreadyArchived = errors.New("employee is already archived")
	ErrEmployeeNotActive       = errors.New("employee is not active")
	ErrFutureHireDate          = errors.New("hire date cannot be in the future")
)
