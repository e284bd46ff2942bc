package user

import (
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Role              string   `json:"role"`
	RoleLabel         string   `json:"role_label"`
	AvatarURL         *string  `json:"avatar_url,omitempty"`
	AssignedBranchIDs []string `json:"assigned_branch_ids,omitempty"`
	EmployeeID        *string  `json:"employee_id,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              string(u.Role),
		RoleLabel:         u.Role.Label(),
		AvatarURL:         u.AvatarURL,
		AssignedBranchIDs: u.AssignedBranchIDs,
		EmployeeID:        u.EmployeeID,
		CreatedAt:         u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         u.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	Role              string   `json:"role"`
	AvatarURL         *string  `json:"avatar_url,omitempty"`
	AssignedBranchIDs []string `json:"assigned_branch_ids,omitempty"`
	EmployeeID        *string  `json:"employee_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	errs = append(errs, validateScope(r.Role, r.AssignedBranchIDs, r.EmployeeID)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest carries a partial update. Nil fields are left unchanged.
type UpdateUserRequest struct {
	ID                string   `json:"-"`
	Name              *string  `json:"name,omitempty"`
	Email             *string  `json:"email,omitempty"`
	Password          *string  `json:"password,omitempty"`
	Role              *string  `json:"role,omitempty"`
	AvatarURL         *string  `json:"avatar_url,omitempty"`
	AssignedBranchIDs []string `json:"assigned_branch_ids,omitempty"`
	EmployeeID        *string  `json:"employee_id,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role != nil {
		errs = append(errs, validateScope(*r.Role, r.AssignedBranchIDs, r.EmployeeID)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateScope(role string, branchIDs []string, employeeID *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	switch Role(role) {
	case RoleSuperAdmin:
	case RoleBranchManager:
		if len(branchIDs) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "assigned_branch_ids",
				Message: "at least one branch is required for a branch manager",
			})
		}
	case RoleEmployee:
		if employeeID == nil || validator.IsEmpty(*employeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id is required for an employee user",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: super_admin, gerente_sucursal, empleado",
		})
	}

	return errs
}
