package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/access"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	incidentRepo incident.IncidentRepository
	branchRepo   branch.BranchRepository
	payrollRepo  payroll.PayrollRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	incidentRepo incident.IncidentRepository,
	branchRepo branch.BranchRepository,
	payrollRepo payroll.PayrollRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		incidentRepo: incidentRepo,
		branchRepo:   branchRepo,
		payrollRepo:  payrollRepo,
	}
}

func (s *ReportServiceImpl) buildWorkforce(ctx context.Context, actor user.User, req *report.WorkforceRequest) (report.Workforce, error) {
	if err := req.Validate(); err != nil {
		return report.Workforce{}, err
	}
	if req.BranchID != "" {
		if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
			return report.Workforce{}, err
		}
	}

	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return report.Workforce{}, err
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.Workforce{}, fmt.Errorf("failed to list employees: %w", err)
	}
	// Archived employees stay in so terminations are counted.
	scoped := access.Filter(actor, all)
	if req.BranchID != "" {
		inBranch := make([]employee.Employee, 0, len(scoped))
		for _, e := range scoped {
			if e.BranchID == req.BranchID {
				inBranch = append(inBranch, e)
			}
		}
		scoped = inBranch
	}

	incs, err := s.incidentRepo.List(ctx)
	if err != nil {
		return report.Workforce{}, fmt.Errorf("failed to list incidents: %w", err)
	}

	year, month, _ := ref.In(period.Location).Date()
	return report.BuildWorkforce(scoped, incs, year, month, req.Months), nil
}

// Workforce implements report.ReportService.
func (s *ReportServiceImpl) Workforce(ctx context.Context, actor user.User, req report.WorkforceRequest) (report.WorkforceResponse, error) {
	w, err := s.buildWorkforce(ctx, actor, &req)
	if err != nil {
		return report.WorkforceResponse{}, err
	}
	return report.ToWorkforceResponse(w, req.BranchID), nil
}

// WorkforceSpreadsheet implements report.ReportService.
func (s *ReportServiceImpl) WorkforceSpreadsheet(ctx context.Context, actor user.User, req report.WorkforceRequest) ([]byte, error) {
	w, err := s.buildWorkforce(ctx, actor, &req)
	if err != nil {
		return nil, err
	}

	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	names := make(map[string]string, len(branches))
	for _, b := range branches {
		names[b.ID] = b.Name
	}

	return renderWorkforce(w, names)
}

// Headcount implements report.ReportService.
func (s *ReportServiceImpl) Headcount(ctx context.Context, actor user.User) (report.HeadcountResponse, error) {
	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.HeadcountResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return report.HeadcountResponse{}, fmt.Errorf("failed to list branches: %w", err)
	}
	names := make(map[string]string, len(branches))
	for _, b := range branches {
		names[b.ID] = b.Name
	}

	resp := report.HeadcountResponse{Branches: make([]report.BranchHeadcountResponse, 0)}
	for _, h := range report.HeadcountByBranch(access.Filter(actor, all)) {
		name := names[h.BranchID]
		if strings.TrimSpace(name) == "" {
			name = h.BranchID
		}
		resp.Branches = append(resp.Branches, report.BranchHeadcountResponse{
			BranchID:   h.BranchID,
			BranchName: name,
			Active:     h.Active,
			Archived:   h.Archived,
		})
		resp.TotalActive += h.Active
		resp.TotalArchived += h.Archived
	}
	return resp, nil
}
