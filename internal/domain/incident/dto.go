package incident

import (
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type IncidentResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	PeriodID   string          `json:"period"`
	Kind       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Comment    string          `json:"comment"`
	CreatedBy  string          `json:"created_by,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

func ToResponse(i Incident) IncidentResponse {
	return IncidentResponse{
		ID:         i.ID,
		EmployeeID: i.EmployeeID,
		PeriodID:   i.PeriodID,
		Kind:       string(i.Kind),
		Amount:     i.Amount,
		Comment:    i.Comment,
		CreatedBy:  i.CreatedBy,
		CreatedAt:  i.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(incs []Incident) []IncidentResponse {
	out := make([]IncidentResponse, 0, len(incs))
	for _, i := range incs {
		out = append(out, ToResponse(i))
	}
	return out
}

// CreateIncidentRequest is manual incident entry. The period is always the
// current one and is never taken from the client.
type CreateIncidentRequest struct {
	EmployeeID string          `json:"-"`
	Kind       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Comment    string          `json:"comment"`
}

func (r *CreateIncidentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !Kind(r.Kind).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "invalid incident type"})
	} else if Kind(r.Kind) != KindAbsence && r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount cannot be zero"})
	}
	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{Field: "comment", Message: "comment is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListIncidentRequest struct {
	EmployeeID string
	PeriodID   string
}
