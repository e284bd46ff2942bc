package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
)

type branchRepositoryImpl struct {
	store *Store
}

func NewBranchRepository(store *Store) branch.BranchRepository {
	return &branchRepositoryImpl{store: store}
}

func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.branches = append(r.store.branches, b)
	return b, nil
}

func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, b := range r.store.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return branch.Branch{}, branch.ErrBranchNotFound
}

func (r *branchRepositoryImpl) List(ctx context.Context) ([]branch.Branch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]branch.Branch{}, r.store.branches...), nil
}

func (r *branchRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, b := range r.store.branches {
		if strings.EqualFold(b.Code, code) {
			return true, nil
		}
	}
	return false, nil
}
