package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/access"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	payrollService payroll.PayrollService
	employeeRepo   employee.EmployeeRepository
	incidentRepo   incident.IncidentRepository
	vacationRepo   vacation.VacationRepository
}

func NewDashboardService(
	payrollService payroll.PayrollService,
	employeeRepo employee.EmployeeRepository,
	incidentRepo incident.IncidentRepository,
	vacationRepo vacation.VacationRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		payrollService: payrollService,
		employeeRepo:   employeeRepo,
		incidentRepo:   incidentRepo,
		vacationRepo:   vacationRepo,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, actor user.User) (dashboard.DashboardResponse, error) {
	current, err := s.payrollService.CurrentPeriod(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	var (
		processing payroll.ProcessingListResponse
		employees  []employee.Employee
		incidents  []incident.Incident
		pending    []vacation.Request
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Payroll progress of the current period
	g.Go(func() error {
		var err error
		processing, err = s.payrollService.ListProcessing(gCtx, actor, payroll.ProcessingFilter{})
		return err
	})

	// 2. Employees, for scoping the counts below
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})

	// 3. Incidents registered in the current period
	g.Go(func() error {
		var err error
		incidents, err = s.incidentRepo.ListByPeriods(gCtx, []string{current.Identifier})
		if err != nil {
			return fmt.Errorf("failed to list incidents: %w", err)
		}
		return nil
	})

	// 4. Vacation requests waiting for review
	g.Go(func() error {
		var err error
		pending, err = s.vacationRepo.ListByStatus(gCtx, vacation.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to list vacation requests: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	visible := make(map[string]bool, len(employees))
	active := 0
	for _, e := range access.Filter(actor, employees) {
		visible[e.ID] = true
		if e.IsActive() {
			active++
		}
	}

	resp := dashboard.DashboardResponse{
		Period: current,
		Payroll: dashboard.PayrollSummary{
			PaidCount:     processing.PaidCount,
			PendingCount:  processing.PendingCount,
			Progress:      processing.Progress,
			TotalEarnings: processing.TotalEarnings,
			TotalNetPay:   processing.TotalNetPay,
		},
		ActiveEmployees: active,
	}
	for _, inc := range incidents {
		if visible[inc.EmployeeID] {
			resp.PeriodIncidents++
		}
	}
	for _, r := range pending {
		if visible[r.EmployeeID] {
			resp.PendingVacationRequests++
		}
	}
	return resp, nil
}
