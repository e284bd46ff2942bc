package branch

import (
	"strings"

	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
)

type Branch struct {
	ID   string
	Name string
	Code string
}

// BranchResponse represents the response structure for a branch.
type BranchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func ToResponse(b Branch) BranchResponse {
	return BranchResponse{ID: b.ID, Name: b.Name, Code: b.Code}
}

// CreateBranchRequest represents the request structure for creating a branch.
type CreateBranchRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (r *CreateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	// Code
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if len(r.Code) > 20 || strings.ContainsAny(r.Code, " \t") {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be at most 20 characters without spaces",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
