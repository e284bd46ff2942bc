package incident

import "context"

type IncidentRepository interface {
	Create(ctx context.Context, inc Incident) (Incident, error)
	CreateBatch(ctx context.Context, incs []Incident) ([]Incident, error)
	List(ctx context.Context) ([]Incident, error)
	ListByPeriods(ctx context.Context, periodIDs []string) ([]Incident, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Incident, error)
}
