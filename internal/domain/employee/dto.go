package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== RESPONSES ==========

type EmployeeResponse struct {
	ID          string          `json:"id"`
	ExternalID  string          `json:"external_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	RFC         string          `json:"rfc"`
	CURP        string          `json:"curp"`
	NSS         string          `json:"nss"`
	CLABE       string          `json:"clabe"`
	BranchID    string          `json:"branch_id"`
	Position    string          `json:"position"`
	Rank        string          `json:"rank"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	DailySalary decimal.Decimal `json:"daily_salary"`
	HireDate    string          `json:"hire_date"`
	Status      string          `json:"status"`
	AvatarURL   *string         `json:"avatar_url,omitempty"`
	ArchivedAt  *string         `json:"archived_at,omitempty"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse  `json:"employees"`
	Pagination pagination.Info     `json:"pagination"`
	Pages      []pagination.Button `json:"pages"`
}

func ToResponse(e Employee) EmployeeResponse {
	var archivedAt *string
	if e.ArchivedAt != nil {
		s := e.ArchivedAt.Format(time.RFC3339)
		archivedAt = &s
	}
	return EmployeeResponse{
		ID:          e.ID,
		ExternalID:  e.ExternalID,
		Name:        e.Name,
		Email:       e.Email,
		RFC:         e.RFC,
		CURP:        e.CURP,
		NSS:         e.NSS,
		CLABE:       e.CLABE,
		BranchID:    e.BranchID,
		Position:    e.Position,
		Rank:        e.Rank,
		GrossSalary: e.GrossSalary,
		DailySalary: e.DailySalary,
		HireDate:    e.HireDate.Format("2006-01-02"),
		Status:      string(e.Status),
		AvatarURL:   e.AvatarURL,
		ArchivedAt:  archivedAt,
	}
}

// ========== CREATE ==========

type CreateEmployeeRequest struct {
	ExternalID  string          `json:"external_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	RFC         string          `json:"rfc"`
	CURP        string          `json:"curp"`
	NSS         string          `json:"nss"`
	CLABE       string          `json:"clabe"`
	BranchID    string          `json:"branch_id"`
	Position    string          `json:"position"`
	Rank        string          `json:"rank"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	HireDate    string          `json:"hire_date"`
	AvatarURL   *string         `json:"avatar_url,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ExternalID) {
		errs = append(errs, validator.ValidationError{Field: "external_id", Message: "external_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	errs = append(errs, validateIdentifiers(&r.RFC, &r.CURP, &r.NSS, &r.CLABE)...)
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "branch_id is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if !r.GrossSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "gross_salary must be greater than 0"})
	}
	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date is required"})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== UPDATE ==========

// UpdateEmployeeRequest carries a partial update. Status is not editable here;
// archival has its own operation.
type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	RFC         *string          `json:"rfc,omitempty"`
	CURP        *string          `json:"curp,omitempty"`
	NSS         *string          `json:"nss,omitempty"`
	CLABE       *string          `json:"clabe,omitempty"`
	BranchID    *string          `json:"branch_id,omitempty"`
	Position    *string          `json:"position,omitempty"`
	Rank        *string          `json:"rank,omitempty"`
	GrossSalary *decimal.Decimal `json:"gross_salary,omitempty"`
	HireDate    *string          `json:"hire_date,omitempty"`
	AvatarURL   *string          `json:"avatar_url,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	errs = append(errs, validateIdentifiers(r.RFC, r.CURP, r.NSS, r.CLABE)...)
	if r.BranchID != nil && validator.IsEmpty(*r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "branch_id cannot be empty"})
	}
	if r.GrossSalary != nil && !r.GrossSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "gross_salary must be greater than 0"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateIdentifiers(rfc, curp, nss, clabe *string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if rfc != nil && !validator.IsValidRFC(*rfc) {
		errs = append(errs, validator.ValidationError{Field: "rfc", Message: "invalid RFC format"})
	}
	if curp != nil && !validator.IsValidCURP(*curp) {
		errs = append(errs, validator.ValidationError{Field: "curp", Message: "invalid CURP format"})
	}
	if nss != nil && !validator.IsValidNSS(*nss) {
		errs = append(errs, validator.ValidationError{Field: "nss", Message: "NSS must be exactly 11 digits"})
	}
	if clabe != nil && !validator.IsValidCLABE(*clabe) {
		errs = append(errs, validator.ValidationError{Field: "clabe", Message: "CLABE must be exactly 18 digits"})
	}
	return errs
}

// ========== LIST ==========

var SortableFields = []string{"created_at", "name", "hire_date", "gross_salary"}

type EmployeeFilter struct {
	Query     string
	BranchID  string
	Status    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, SortableFields) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: " + strings.Join(SortableFields, ", "),
		})
	}
	if f.Status != "" && !Status(f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Activo or Archivado",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Params returns the normalized pagination parameters of the filter.
func (f *EmployeeFilter) Params() pagination.Params {
	return pagination.Normalize(pagination.Params{
		Page:      f.Page,
		PageSize:  f.PageSize,
		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
	})
}
