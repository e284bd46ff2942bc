package vacation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/access"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/google/uuid"
)

type VacationServiceImpl struct {
	vacationRepo vacation.VacationRepository
	employeeRepo employee.EmployeeRepository
	payrollRepo  payroll.PayrollRepository
	now          func() time.Time
}

func NewVacationService(
	vacationRepo vacation.VacationRepository,
	employeeRepo employee.EmployeeRepository,
	payrollRepo payroll.PayrollRepository,
) vacation.VacationService {
	return &VacationServiceImpl{
		vacationRepo: vacationRepo,
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
		now:          time.Now,
	}
}

// balance returns the employee's stats as of the reference date plus the days
// already held by pending requests.
func (s *VacationServiceImpl) balance(ctx context.Context, emp employee.Employee) (vacation.Stats, []vacation.Request, int, error) {
	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return vacation.Stats{}, nil, 0, err
	}
	requests, err := s.vacationRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return vacation.Stats{}, nil, 0, fmt.Errorf("failed to list vacation requests: %w", err)
	}

	pending := 0
	for _, r := range requests {
		if r.Status == vacation.StatusPending {
			pending += r.DaysRequested
		}
	}
	return vacation.ComputeStats(emp.HireDate, ref, requests), requests, pending, nil
}

// GetEmployeeVacations implements vacation.VacationService.
func (s *VacationServiceImpl) GetEmployeeVacations(ctx context.Context, actor user.User, employeeID string) (vacation.EmployeeVacationsResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return vacation.EmployeeVacationsResponse{}, err
	}
	if err := access.Guard(actor, emp); err != nil {
		return vacation.EmployeeVacationsResponse{}, err
	}

	stats, requests, _, err := s.balance(ctx, emp)
	if err != nil {
		return vacation.EmployeeVacationsResponse{}, err
	}
	return vacation.ToEmployeeVacationsResponse(emp.ID, stats, requests), nil
}

// Create implements vacation.VacationService. Pending requests count against
// the balance so an employee cannot overbook while waiting for review.
func (s *VacationServiceImpl) Create(ctx context.Context, actor user.User, req vacation.CreateRequestRequest) (vacation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}
	if !actor.IsEmployee() || actor.EmployeeID == nil {
		return vacation.RequestResponse{}, user.ErrInsufficientPermissions
	}

	emp, err := s.employeeRepo.GetByID(ctx, *actor.EmployeeID)
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	if err := access.GuardActive(actor, emp); err != nil {
		return vacation.RequestResponse{}, err
	}

	start, err := period.ParseReferenceDate(req.StartDate)
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	end, err := period.ParseReferenceDate(req.EndDate)
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	days := vacation.Weekdays(start, end)
	if days == 0 {
		return vacation.RequestResponse{}, vacation.ErrNoWorkingDays
	}

	stats, _, pending, err := s.balance(ctx, emp)
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	if days > stats.AvailableDays-pending {
		return vacation.RequestResponse{}, fmt.Errorf("%w: requested %d, available %d", vacation.ErrInsufficientDays, days, stats.AvailableDays-pending)
	}

	created, err := s.vacationRepo.Create(ctx, vacation.Request{
		ID:            uuid.NewString(),
		EmployeeID:    emp.ID,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: days,
		Status:        vacation.StatusPending,
		RequestedAt:   s.now(),
	})
	if err != nil {
		return vacation.RequestResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	slog.Info("Vacation requested", "request_id", created.ID, "employee_id", emp.ID, "days", days)
	return vacation.ToResponse(created), nil
}

// Review implements vacation.VacationService.
func (s *VacationServiceImpl) Review(ctx context.Context, actor user.User, req vacation.ReviewRequest) (vacation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}
	if actor.IsEmployee() {
		return vacation.RequestResponse{}, vacation.ErrSelfReviewForbidden
	}

	request, err := s.vacationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	// Out-of-scope requests look missing rather than forbidden.
	if !access.IsVisible(actor, emp) {
		return vacation.RequestResponse{}, vacation.ErrRequestNotFound
	}

	decision := vacation.Status(req.Decision)
	if decision == vacation.StatusApproved && request.Status == vacation.StatusPending {
		stats, _, _, err := s.balance(ctx, emp)
		if err != nil {
			return vacation.RequestResponse{}, err
		}
		if request.DaysRequested > stats.AvailableDays {
			return vacation.RequestResponse{}, vacation.ErrInsufficientDays
		}
	}

	if err := request.Review(decision, actor.Name, s.now()); err != nil {
		return vacation.RequestResponse{}, err
	}
	if err := s.vacationRepo.Update(ctx, request); err != nil {
		return vacation.RequestResponse{}, fmt.Errorf("failed to update vacation request: %w", err)
	}

	slog.Info("Vacation reviewed", "request_id", request.ID, "status", string(request.Status), "reviewed_by", actor.ID)
	return vacation.ToResponse(request), nil
}
