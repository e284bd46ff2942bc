package vacation

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

type VacationService interface {
	GetEmployeeVacations(ctx context.Context, actor user.User, employeeID string) (EmployeeVacationsResponse, error)
	// Create files a request for the actor's own employee record.
	Create(ctx context.Context, actor user.User, req CreateRequestRequest) (RequestResponse, error)
	Review(ctx context.Context, actor user.User, req ReviewRequest) (RequestResponse, error)
}
