package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type incidentRepositoryImpl struct {
	db *database.DB
}

func NewIncidentRepository(db *database.DB) incident.IncidentRepository {
	return &incidentRepositoryImpl{db: db}
}

const incidentColumns = `id, employee_id, period_id, kind, amount, comment, created_by, created_at`

const insertIncident = `
	INSERT INTO incidents (` + incidentColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func incidentArgs(inc incident.Incident) []any {
	return []any{inc.ID, inc.EmployeeID, inc.PeriodID, string(inc.Kind), inc.Amount, inc.Comment, inc.CreatedBy, inc.CreatedAt}
}

func collectIncidents(rows pgx.Rows) ([]incident.Incident, error) {
	defer rows.Close()

	var incidents []incident.Incident
	for rows.Next() {
		var inc incident.Incident
		var kind string
		if err := rows.Scan(&inc.ID, &inc.EmployeeID, &inc.PeriodID, &kind, &inc.Amount, &inc.Comment, &inc.CreatedBy, &inc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan incident: %w", err)
		}
		inc.Kind = incident.Kind(kind)
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return incidents, nil
}

// Create implements incident.IncidentRepository.
func (r *incidentRepositoryImpl) Create(ctx context.Context, inc incident.Incident) (incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, insertIncident, incidentArgs(inc)...); err != nil {
		return incident.Incident{}, fmt.Errorf("failed to create incident: %w", err)
	}
	return inc, nil
}

// CreateBatch implements incident.IncidentRepository. Callers wanting
// all-or-nothing semantics run it inside a TxManager unit.
func (r *incidentRepositoryImpl) CreateBatch(ctx context.Context, incs []incident.Incident) ([]incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	for _, inc := range incs {
		if _, err := q.Exec(ctx, insertIncident, incidentArgs(inc)...); err != nil {
			return nil, fmt.Errorf("failed to create incident for employee %s: %w", inc.EmployeeID, err)
		}
	}
	return incs, nil
}

// List implements incident.IncidentRepository.
func (r *incidentRepositoryImpl) List(ctx context.Context) ([]incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+incidentColumns+` FROM incidents ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectIncidents(rows)
}

// ListByPeriods implements incident.IncidentRepository.
func (r *incidentRepositoryImpl) ListByPeriods(ctx context.Context, periodIDs []string) ([]incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+incidentColumns+` FROM incidents WHERE period_id = ANY($1) ORDER BY created_at, id`,
		periodIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by period: %w", err)
	}
	return collectIncidents(rows)
}

// ListByEmployee implements incident.IncidentRepository.
func (r *incidentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]incident.Incident, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+incidentColumns+` FROM incidents WHERE employee_id = $1 ORDER BY created_at, id`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by employee: %w", err)
	}
	return collectIncidents(rows)
}
