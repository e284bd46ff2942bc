package memory

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
)

type vacationRepositoryImpl struct {
	store *Store
}

func NewVacationRepository(store *Store) vacation.VacationRepository {
	return &vacationRepositoryImpl{store: store}
}

func (r *vacationRepositoryImpl) Create(ctx context.Context, req vacation.Request) (vacation.Request, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.vacations = append(r.store.vacations, req)
	return req, nil
}

func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, v := range r.store.vacations {
		if v.ID == id {
			return v, nil
		}
	}
	return vacation.Request{}, vacation.ErrRequestNotFound
}

func (r *vacationRepositoryImpl) Update(ctx context.Context, req vacation.Request) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.vacations {
		if r.store.vacations[i].ID == req.ID {
			r.store.vacations[i] = req
			return nil
		}
	}
	return vacation.ErrRequestNotFound
}

func (r *vacationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.Request, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]vacation.Request, 0)
	for _, v := range r.store.vacations {
		if v.EmployeeID == employeeID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *vacationRepositoryImpl) ListByStatus(ctx context.Context, status vacation.Status) ([]vacation.Request, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]vacation.Request, 0)
	for _, v := range r.store.vacations {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out, nil
}
