package attendance

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

type AttendanceService interface {
	// Clock records the next timestamp of the actor's own day log.
	Clock(ctx context.Context, actor user.User) (ClockResponse, error)
	DailySummary(ctx context.Context, actor user.User) (DailySummaryResponse, error)
	// MonthlyReport defaults Month to the reference month when empty.
	MonthlyReport(ctx context.Context, actor user.User, req MonthlyReportRequest) (MonthlyReportResponse, error)
}
