package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees {
		if e.ID == id {
			return cloneEmployee(e), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.store.employees))
	for _, e := range r.store.employees {
		out = append(out, cloneEmployee(e))
	}
	return out, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.employees = append(r.store.employees, cloneEmployee(newEmployee))
	return cloneEmployee(newEmployee), nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.employees {
		if r.store.employees[i].ID == e.ID {
			r.store.employees[i] = cloneEmployee(e)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) ExistsByExternalID(ctx context.Context, externalID, excludeID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees {
		if e.ID != excludeID && strings.EqualFold(e.ExternalID, externalID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees {
		if e.ID != excludeID && strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
