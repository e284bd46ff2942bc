package report

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

// ReportService builds reports over the employees visible to the actor.
type ReportService interface {
	Workforce(ctx context.Context, actor user.User, req WorkforceRequest) (WorkforceResponse, error)
	// WorkforceSpreadsheet renders the same report as an xlsx workbook.
	WorkforceSpreadsheet(ctx context.Context, actor user.User, req WorkforceRequest) ([]byte, error)
	Headcount(ctx context.Context, actor user.User) (HeadcountResponse, error)
}
