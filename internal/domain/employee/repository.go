package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, e Employee) error
	// excludeID skips the employee being edited; pass "" on create.
	ExistsByExternalID(ctx context.Context, externalID, excludeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
}
