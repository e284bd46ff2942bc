package incident

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/access"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type IncidentServiceImpl struct {
	incidentRepo incident.IncidentRepository
	employeeRepo employee.EmployeeRepository
	payrollRepo  payroll.PayrollRepository
	now          func() time.Time
}

func NewIncidentService(
	incidentRepo incident.IncidentRepository,
	employeeRepo employee.EmployeeRepository,
	payrollRepo payroll.PayrollRepository,
) incident.IncidentService {
	return &IncidentServiceImpl{
		incidentRepo: incidentRepo,
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
		now:          time.Now,
	}
}

// Create implements incident.IncidentService. The incident always lands in the
// current period; an absence is priced at one day of the employee's salary.
func (s *IncidentServiceImpl) Create(ctx context.Context, actor user.User, req incident.CreateIncidentRequest) (incident.IncidentResponse, error) {
	if err := req.Validate(); err != nil {
		return incident.IncidentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return incident.IncidentResponse{}, err
	}
	if err := access.GuardActive(actor, emp); err != nil {
		return incident.IncidentResponse{}, err
	}

	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return incident.IncidentResponse{}, err
	}
	periodID, err := period.Identifier(ref)
	if err != nil {
		return incident.IncidentResponse{}, err
	}

	kind := incident.Kind(req.Kind)
	amount := req.Amount
	if kind == incident.KindAbsence {
		amount = incident.AbsenceAmount(emp.DailySalary)
	}

	newIncident := incident.Incident{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		PeriodID:   periodID,
		Kind:       kind,
		Amount:     amount,
		Comment:    strings.TrimSpace(req.Comment),
		CreatedBy:  actor.ID,
		CreatedAt:  s.now(),
	}

	created, err := s.incidentRepo.Create(ctx, newIncident)
	if err != nil {
		return incident.IncidentResponse{}, fmt.Errorf("failed to create incident: %w", err)
	}

	slog.Info("Incident registered",
		"incident_id", created.ID,
		"employee_id", created.EmployeeID,
		"period", created.PeriodID,
		"type", string(created.Kind),
		"amount", created.Amount.String(),
	)
	return incident.ToResponse(created), nil
}

// ListByEmployee implements incident.IncidentService. An empty PeriodID lists
// every period.
func (s *IncidentServiceImpl) ListByEmployee(ctx context.Context, actor user.User, req incident.ListIncidentRequest) ([]incident.IncidentResponse, error) {
	if req.PeriodID != "" {
		if _, err := period.ParseIdentifier(req.PeriodID); err != nil {
			return nil, validator.ValidationErrors{{Field: "period", Message: "period must be in YYYY-MM-Q1 or YYYY-MM-Q2 format"}}
		}
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if err := access.Guard(actor, emp); err != nil {
		return nil, err
	}

	incs, err := s.incidentRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	if req.PeriodID != "" {
		incs = incident.ForEmployeePeriod(incs, emp.ID, req.PeriodID)
	}
	return incident.ToResponses(incs), nil
}
