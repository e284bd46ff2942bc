package bonus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/access"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/bonus"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BonusServiceImpl struct {
	db           database.TxManager
	templateRepo bonus.TemplateRepository
	employeeRepo employee.EmployeeRepository
	incidentRepo incident.IncidentRepository
	payrollRepo  payroll.PayrollRepository
	now          func() time.Time
}

func NewBonusService(
	db database.TxManager,
	templateRepo bonus.TemplateRepository,
	employeeRepo employee.EmployeeRepository,
	incidentRepo incident.IncidentRepository,
	payrollRepo payroll.PayrollRepository,
) bonus.BonusService {
	return &BonusServiceImpl{
		db:           db,
		templateRepo: templateRepo,
		employeeRepo: employeeRepo,
		incidentRepo: incidentRepo,
		payrollRepo:  payrollRepo,
		now:          time.Now,
	}
}

// ListTemplates implements bonus.BonusService.
func (s *BonusServiceImpl) ListTemplates(ctx context.Context) ([]bonus.TemplateResponse, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus templates: %w", err)
	}

	resp := make([]bonus.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, bonus.ToResponse(t))
	}
	return resp, nil
}

// CreateTemplate implements bonus.BonusService.
func (s *BonusServiceImpl) CreateTemplate(ctx context.Context, actor user.User, req bonus.CreateTemplateRequest) (bonus.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.TemplateResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.templateRepo.ExistsByName(ctx, name)
	if err != nil {
		return bonus.TemplateResponse{}, fmt.Errorf("failed to check template name: %w", err)
	}
	if exists {
		return bonus.TemplateResponse{}, bonus.ErrTemplateNameExists
	}

	created, err := s.templateRepo.Create(ctx, bonus.Template{
		ID:          uuid.NewString(),
		Name:        name,
		Kind:        bonus.CalculationKind(req.Kind),
		Value:       req.Value,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   s.now(),
	})
	if err != nil {
		return bonus.TemplateResponse{}, fmt.Errorf("failed to create bonus template: %w", err)
	}

	slog.Info("Bonus template created", "template_id", created.ID, "name", created.Name, "created_by", actor.ID)
	return bonus.ToResponse(created), nil
}

// Preview implements bonus.BonusService. It lists every active employee the
// actor may target with the amount the template would produce.
func (s *BonusServiceImpl) Preview(ctx context.Context, actor user.User, templateID string) (bonus.PreviewResponse, error) {
	tmpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return bonus.PreviewResponse{}, err
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return bonus.PreviewResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	items := make([]bonus.PreviewItem, 0)
	total := decimal.Zero
	for _, e := range access.FilterActive(actor, all) {
		amount := tmpl.AmountFor(e.GrossSalary)
		total = total.Add(amount)
		items = append(items, bonus.PreviewItem{
			EmployeeID:   e.ID,
			ExternalID:   e.ExternalID,
			EmployeeName: e.Name,
			BranchID:     e.BranchID,
			GrossSalary:  e.GrossSalary,
			Amount:       amount,
		})
	}

	return bonus.PreviewResponse{
		Template: bonus.ToResponse(tmpl),
		Items:    items,
		Total:    total,
	}, nil
}

// Assign implements bonus.BonusService. Every target is checked before
// anything is written; one bad target rejects the whole batch.
func (s *BonusServiceImpl) Assign(ctx context.Context, actor user.User, req bonus.AssignRequest) (bonus.AssignResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.AssignResponse{}, err
	}

	tmpl, err := s.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		return bonus.AssignResponse{}, err
	}

	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return bonus.AssignResponse{}, err
	}
	periodID, err := period.Identifier(ref)
	if err != nil {
		return bonus.AssignResponse{}, err
	}

	now := s.now()
	seen := make(map[string]struct{}, len(req.Targets))
	batch := make([]incident.Incident, 0, len(req.Targets))
	for _, target := range req.Targets {
		if _, dup := seen[target.EmployeeID]; dup {
			return bonus.AssignResponse{}, fmt.Errorf("%w: %s", bonus.ErrDuplicateTarget, target.EmployeeID)
		}
		seen[target.EmployeeID] = struct{}{}

		emp, err := s.employeeRepo.GetByID(ctx, target.EmployeeID)
		if err != nil {
			return bonus.AssignResponse{}, err
		}
		if err := access.GuardActive(actor, emp); err != nil {
			return bonus.AssignResponse{}, err
		}

		amount := tmpl.AmountFor(emp.GrossSalary)
		if target.Amount != nil {
			amount = *target.Amount
		}

		batch = append(batch, incident.Incident{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			PeriodID:   periodID,
			Kind:       incident.KindBonus,
			Amount:     amount,
			Comment:    tmpl.Name,
			CreatedBy:  actor.ID,
			CreatedAt:  now,
		})
	}

	var created []incident.Incident
	err = s.db.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.incidentRepo.CreateBatch(txCtx, batch)
		return err
	})
	if err != nil {
		return bonus.AssignResponse{}, fmt.Errorf("failed to assign bonus: %w", err)
	}

	total := decimal.Zero
	for _, inc := range created {
		total = total.Add(inc.Amount)
	}

	slog.Info("Bonus assigned",
		"template_id", tmpl.ID,
		"period", periodID,
		"employees", len(created),
		"total", total.String(),
		"assigned_by", actor.ID,
	)
	return bonus.AssignResponse{
		PeriodID:  periodID,
		Incidents: incident.ToResponses(created),
		Total:     total,
	}, nil
}
