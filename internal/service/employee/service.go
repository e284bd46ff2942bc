package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/access"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	branchRepo   branch.BranchRepository
	payrollRepo  payroll.PayrollRepository
	now          func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
	payrollRepo payroll.PayrollRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		branchRepo:   branchRepo,
		payrollRepo:  payrollRepo,
		now:          time.Now,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, actor user.User, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	params := filter.Params()

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	matched := make([]employee.Employee, 0)
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	for _, e := range access.Filter(actor, all) {
		if filter.BranchID != "" && e.BranchID != filter.BranchID {
			continue
		}
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Name), query) &&
			!strings.Contains(strings.ToLower(e.Email), query) &&
			!strings.Contains(strings.ToLower(e.ExternalID), query) {
			continue
		}
		matched = append(matched, e)
	}

	sortEmployees(matched, params.SortBy, params.SortOrder)

	start, end := pagination.Window(len(matched), params)
	items := make([]employee.EmployeeResponse, 0, end-start)
	for _, e := range matched[start:end] {
		items = append(items, employee.ToResponse(e))
	}

	info := pagination.Calculate(len(matched), params.Page, params.PageSize)
	return employee.ListEmployeeResponse{
		Employees:  items,
		Pagination: info,
		Pages:      pagination.Range(info.Page, info.TotalPages, pagination.DefaultButtons),
	}, nil
}

func sortEmployees(list []employee.Employee, sortBy, order string) {
	less := func(a, b employee.Employee) bool {
		switch sortBy {
		case "name":
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case "hire_date":
			return a.HireDate.Before(b.HireDate)
		case "gross_salary":
			return a.GrossSalary.LessThan(b.GrossSalary)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if order == pagination.SortAsc {
			return less(list[i], list[j])
		}
		return less(list[j], list[i])
	})
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, actor user.User, id string) (employee.EmployeeResponse, error) {
	emp, err := s.visibleEmployee(ctx, actor, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) visibleEmployee(ctx context.Context, actor user.User, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if err := access.Guard(actor, emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := period.ParseReferenceDate(req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"}}
	}
	if err := s.checkHireDate(ctx, hireDate); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.checkUnique(ctx, req.ExternalID, req.Email, ""); err != nil {
		return employee.EmployeeResponse{}, err
	}

	now := s.now()
	newEmployee := employee.Employee{
		ID:         uuid.NewString(),
		ExternalID: strings.TrimSpace(req.ExternalID),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		RFC:        strings.ToUpper(req.RFC),
		CURP:       strings.ToUpper(req.CURP),
		NSS:        req.NSS,
		CLABE:      req.CLABE,
		BranchID:   req.BranchID,
		Position:   req.Position,
		Rank:       req.Rank,
		HireDate:   hireDate,
		Status:     employee.StatusActive,
		AvatarURL:  req.AvatarURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	newEmployee.SetGrossSalary(req.GrossSalary)

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "employee_id", created.ID, "external_id", created.ExternalID, "branch_id", created.BranchID)
	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) checkHireDate(ctx context.Context, hireDate time.Time) error {
	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrReferenceDateNotSet) {
			return nil
		}
		return err
	}
	if period.DayKey(hireDate) > period.DayKey(ref) {
		return employee.ErrFutureHireDate
	}
	return nil
}

func (s *EmployeeServiceImpl) checkUnique(ctx context.Context, externalID, email, excludeID string) error {
	if externalID != "" {
		exists, err := s.employeeRepo.ExistsByExternalID(ctx, externalID, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check external id: %w", err)
		}
		if exists {
			return employee.ErrExternalIDExists
		}
	}
	if email != "" {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, email, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return employee.ErrEmailExists
		}
	}
	return nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, actor user.User, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.visibleEmployee(ctx, actor, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var email string
	if req.Email != nil {
		email = strings.TrimSpace(*req.Email)
	}
	if err := s.checkUnique(ctx, "", email, emp.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		emp.Email = email
	}
	if req.RFC != nil {
		emp.RFC = strings.ToUpper(*req.RFC)
	}
	if req.CURP != nil {
		emp.CURP = strings.ToUpper(*req.CURP)
	}
	if req.NSS != nil {
		emp.NSS = *req.NSS
	}
	if req.CLABE != nil {
		emp.CLABE = *req.CLABE
	}
	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, *req.BranchID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.BranchID = *req.BranchID
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Rank != nil {
		emp.Rank = *req.Rank
	}
	if req.GrossSalary != nil {
		emp.SetGrossSalary(*req.GrossSalary)
	}
	if req.HireDate != nil {
		hireDate, err := period.ParseReferenceDate(*req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, validator.ValidationErrors{{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"}}
		}
		if err := s.checkHireDate(ctx, hireDate); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.HireDate = hireDate
	}
	if req.AvatarURL != nil {
		emp.AvatarURL = req.AvatarURL
	}
	emp.UpdatedAt = s.now()

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.ToResponse(emp), nil
}

// ArchiveEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ArchiveEmployee(ctx context.Context, actor user.User, id string) (employee.EmployeeResponse, error) {
	emp, err := s.visibleEmployee(ctx, actor, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := emp.Archive(s.now()); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to archive employee: %w", err)
	}

	slog.Info("Employee archived", "employee_id", emp.ID, "archived_by", actor.ID)
	return employee.ToResponse(emp), nil
}
