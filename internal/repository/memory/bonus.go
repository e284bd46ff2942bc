package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/bonus"
)

type templateRepositoryImpl struct {
	store *Store
}

func NewTemplateRepository(store *Store) bonus.TemplateRepository {
	return &templateRepositoryImpl{store: store}
}

func (r *templateRepositoryImpl) List(ctx context.Context) ([]bonus.Template, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]bonus.Template{}, r.store.templates...), nil
}

func (r *templateRepositoryImpl) GetByID(ctx context.Context, id string) (bonus.Template, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return bonus.Template{}, bonus.ErrTemplateNotFound
}

func (r *templateRepositoryImpl) Create(ctx context.Context, t bonus.Template) (bonus.Template, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.templates = append(r.store.templates, t)
	return t, nil
}

func (r *templateRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.templates {
		if strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}
