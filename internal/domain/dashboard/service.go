package dashboard

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard gathers the independent reads concurrently
	GetDashboard(ctx context.Context, actor user.User) (DashboardResponse, error)
}
