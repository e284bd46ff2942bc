package vacation

import "context"

type VacationRepository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Update(ctx context.Context, r Request) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListByStatus(ctx context.Context, status Status) ([]Request, error)
}
