package bonus

import (
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type TemplateResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Kind        string          `json:"calculation_type"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
}

func ToResponse(t Template) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Kind:        string(t.Kind),
		Value:       t.Value,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

type CreateTemplateRequest struct {
	Name        string          `json:"name"`
	Kind        string          `json:"calculation_type"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !CalculationKind(r.Kind).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "calculation_type",
			Message: "calculation_type must be Monto Fijo or Porcentaje de Salario",
		})
	}
	if !r.Value.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "value must be greater than 0"})
	} else if CalculationKind(r.Kind) == CalculationPercentage && r.Value.GreaterThan(hundred) {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "percentage cannot exceed 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PREVIEW ==========

type PreviewItem struct {
	EmployeeID   string          `json:"employee_id"`
	ExternalID   string          `json:"external_id"`
	EmployeeName string          `json:"employee_name"`
	BranchID     string          `json:"branch_id"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	Amount       decimal.Decimal `json:"amount"`
}

type PreviewResponse struct {
	Template TemplateResponse `json:"template"`
	Items    []PreviewItem    `json:"items"`
	Total    decimal.Decimal  `json:"total"`
}

// ========== ASSIGN ==========

// AssignTarget selects one employee. A nil Amount means the template's own
// calculation.
type AssignTarget struct {
	EmployeeID string           `json:"employee_id"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

type AssignRequest struct {
	TemplateID string         `json:"template_id"`
	Targets    []AssignTarget `json:"targets"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TemplateID) {
		errs = append(errs, validator.ValidationError{Field: "template_id", Message: "template_id is required"})
	}
	if len(r.Targets) == 0 {
		errs = append(errs, validator.ValidationError{Field: "targets", Message: "at least one employee is required"})
	}
	for _, t := range r.Targets {
		if validator.IsEmpty(t.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "targets.employee_id", Message: "employee_id is required"})
		}
		if t.Amount != nil && !t.Amount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "targets.amount", Message: "amount must be greater than 0"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignResponse struct {
	PeriodID  string                      `json:"period"`
	Incidents []incident.IncidentResponse `json:"incidents"`
	Total     decimal.Decimal             `json:"total"`
}
