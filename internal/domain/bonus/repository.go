package bonus

import "context"

type TemplateRepository interface {
	List(ctx context.Context) ([]Template, error)
	GetByID(ctx context.Context, id string) (Template, error)
	Create(ctx context.Context, t Template) (Template, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
