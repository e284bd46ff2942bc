package memory

import (
	"context"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
)

type incidentRepositoryImpl struct {
	store *Store
}

func NewIncidentRepository(store *Store) incident.IncidentRepository {
	return &incidentRepositoryImpl{store: store}
}

func (r *incidentRepositoryImpl) Create(ctx context.Context, inc incident.Incident) (incident.Incident, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.incidents = append(r.store.incidents, inc)
	return inc, nil
}

// CreateBatch appends all incidents under one lock, so readers see all or none.
func (r *incidentRepositoryImpl) CreateBatch(ctx context.Context, incs []incident.Incident) ([]incident.Incident, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.incidents = append(r.store.incidents, incs...)
	return append([]incident.Incident{}, incs...), nil
}

func (r *incidentRepositoryImpl) List(ctx context.Context) ([]incident.Incident, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]incident.Incident{}, r.store.incidents...), nil
}

func (r *incidentRepositoryImpl) ListByPeriods(ctx context.Context, periodIDs []string) ([]incident.Incident, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]struct{}, len(periodIDs))
	for _, id := range periodIDs {
		wanted[id] = struct{}{}
	}

	out := make([]incident.Incident, 0)
	for _, inc := range r.store.incidents {
		if _, ok := wanted[inc.PeriodID]; ok {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (r *incidentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]incident.Incident, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]incident.Incident, 0)
	for _, inc := range r.store.incidents {
		if inc.EmployeeID == employeeID {
			out = append(out, inc)
		}
	}
	return out, nil
}
