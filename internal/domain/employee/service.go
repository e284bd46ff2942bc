package employee

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

// EmployeeService defines business logic for employee operations. Every read is
// narrowed to what the actor may see.
type EmployeeService interface {
	ListEmployees(ctx context.Context, actor user.User, filter EmployeeFilter) (ListEmployeeResponse, error)
	GetEmployee(ctx context.Context, actor user.User, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, actor user.User, req UpdateEmployeeRequest) (EmployeeResponse, error)
	ArchiveEmployee(ctx context.Context, actor user.User, id string) (EmployeeResponse, error)
}
