package incident

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

type IncidentService interface {
	Create(ctx context.Context, actor user.User, req CreateIncidentRequest) (IncidentResponse, error)
	ListByEmployee(ctx context.Context, actor user.User, req ListIncidentRequest) ([]IncidentResponse, error)
}
