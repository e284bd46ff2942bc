package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/bonus"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrBranchAssignmentMissing),
		errors.Is(err, user.ErrEmployeeLinkMissing),
		errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrSuperAdminRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Branch domain errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchCodeExists):
		Conflict(w, "Branch code already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrExternalIDExists):
		Conflict(w, "External ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyArchived),
		errors.Is(err, employee.ErrEmployeeNotActive):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrFutureHireDate):
		BadRequest(w, err.Error(), nil)

	// Period and payroll errors
	case errors.Is(err, period.ErrInvalidReferenceDate),
		errors.Is(err, period.ErrInvalidIdentifier):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrPayrollIncomplete),
		errors.Is(err, payroll.ErrNoActiveEmployees),
		errors.Is(err, payroll.ErrPeriodAlreadyClosed):
		Conflict(w, err.Error())

	// Bonus domain errors
	case errors.Is(err, bonus.ErrTemplateNotFound):
		NotFound(w, "Bonus template not found")
	case errors.Is(err, bonus.ErrTemplateNameExists):
		Conflict(w, "Bonus template name already exists")
	case errors.Is(err, bonus.ErrDuplicateTarget):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayComplete),
		errors.Is(err, attendance.ErrClockOutBeforeIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Vacation domain errors
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrRequestAlreadyReviewed):
		Conflict(w, err.Error())
	case errors.Is(err, vacation.ErrSelfReviewForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, vacation.ErrInsufficientDays),
		errors.Is(err, vacation.ErrNoWorkingDays),
		errors.Is(err, vacation.ErrInvalidDateRange),
		errors.Is(err, vacation.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
