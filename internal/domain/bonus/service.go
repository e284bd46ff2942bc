package bonus

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

type BonusService interface {
	ListTemplates(ctx context.Context) ([]TemplateResponse, error)
	CreateTemplate(ctx context.Context, actor user.User, req CreateTemplateRequest) (TemplateResponse, error)
	Preview(ctx context.Context, actor user.User, templateID string) (PreviewResponse, error)
	Assign(ctx context.Context, actor user.User, req AssignRequest) (AssignResponse, error)
}
