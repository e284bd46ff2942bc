package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/access"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/payslip"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db           database.TxManager
	calculator   *payroll.Calculator
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	incidentRepo incident.IncidentRepository
	branchRepo   branch.BranchRepository
	now          func() time.Time
}

func NewPayrollService(
	db database.TxManager,
	calculator *payroll.Calculator,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	incidentRepo incident.IncidentRepository,
	branchRepo branch.BranchRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		calculator:   calculator,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		incidentRepo: incidentRepo,
		branchRepo:   branchRepo,
		now:          time.Now,
	}
}

// periodState is everything the payroll screens need for the live period.
type periodState struct {
	ref        time.Time
	info       period.Info
	incidents  []incident.Incident
	paid       map[string]payroll.Payment
	signatures map[string]payroll.Signature
}

func (s *PayrollServiceImpl) loadPeriod(ctx context.Context) (periodState, error) {
	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return periodState{}, err
	}
	info, err := period.Resolve(ref)
	if err != nil {
		return periodState{}, err
	}

	incs, err := s.incidentRepo.ListByPeriods(ctx, []string{info.Identifier})
	if err != nil {
		return periodState{}, fmt.Errorf("failed to list incidents: %w", err)
	}
	payments, err := s.payrollRepo.ListPayments(ctx, info.Identifier)
	if err != nil {
		return periodState{}, fmt.Errorf("failed to list payments: %w", err)
	}
	signatures, err := s.payrollRepo.ListSignatures(ctx, info.Identifier)
	if err != nil {
		return periodState{}, fmt.Errorf("failed to list signatures: %w", err)
	}

	state := periodState{
		ref:        ref,
		info:       info,
		incidents:  incs,
		paid:       make(map[string]payroll.Payment, len(payments)),
		signatures: make(map[string]payroll.Signature, len(signatures)),
	}
	for _, p := range payments {
		state.paid[p.EmployeeID] = p
	}
	for _, sig := range signatures {
		state.signatures[sig.EmployeeID] = sig
	}
	return state, nil
}

// CurrentPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) CurrentPeriod(ctx context.Context) (period.PeriodResponse, error) {
	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	info, err := period.Resolve(ref)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	return period.ToResponse(info, ref), nil
}

// ListPeriodHistory implements payroll.PayrollService. Newest first.
func (s *PayrollServiceImpl) ListPeriodHistory(ctx context.Context) ([]period.RecordResponse, error) {
	records, err := s.payrollRepo.ListPeriodRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list period history: %w", err)
	}

	resp := make([]period.RecordResponse, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		resp = append(resp, period.ToRecordResponse(records[i]))
	}
	return resp, nil
}

// ListProcessing implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListProcessing(ctx context.Context, actor user.User, filter payroll.ProcessingFilter) (payroll.ProcessingListResponse, error) {
	state, err := s.loadPeriod(ctx)
	if err != nil {
		return payroll.ProcessingListResponse{}, err
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.ProcessingListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	targets := access.FilterActive(actor, all)

	rows := make([]payroll.EmployeePayrollResponse, 0, len(targets))
	totalEarnings := decimal.Zero
	totalNet := decimal.Zero
	paidCount := 0
	for _, emp := range targets {
		res, err := s.calculator.Calculate(emp, state.incidents, state.ref)
		if err != nil {
			return payroll.ProcessingListResponse{}, err
		}
		_, paid := state.paid[emp.ID]
		_, signed := state.signatures[emp.ID]
		if paid {
			paidCount++
		}
		totalEarnings = totalEarnings.Add(res.TotalEarnings)
		totalNet = totalNet.Add(res.NetPay)

		rows = append(rows, payroll.EmployeePayrollResponse{
			EmployeeID:   emp.ID,
			ExternalID:   emp.ExternalID,
			EmployeeName: emp.Name,
			BranchID:     emp.BranchID,
			Paid:         paid,
			Signed:       signed,
			Payroll:      payroll.ToResultResponse(res),
		})
	}

	params := pagination.Normalize(pagination.Params{Page: filter.Page, PageSize: filter.PageSize})
	start, end := pagination.Window(len(rows), params)
	info := pagination.Calculate(len(rows), params.Page, params.PageSize)

	return payroll.ProcessingListResponse{
		Period:        period.ToResponse(state.info, state.ref),
		Employees:     rows[start:end],
		PendingCount:  len(rows) - paidCount,
		PaidCount:     paidCount,
		Progress:      payroll.Progress(paidCount, len(rows)),
		TotalEarnings: totalEarnings,
		TotalNetPay:   totalNet,
		Pagination:    info,
		Pages:         pagination.Range(info.Page, info.TotalPages, pagination.DefaultButtons),
	}, nil
}

func (s *PayrollServiceImpl) visibleEmployee(ctx context.Context, actor user.User, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if err := access.Guard(actor, emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (s *PayrollServiceImpl) calculate(ctx context.Context, emp employee.Employee) (payroll.Result, error) {
	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return payroll.Result{}, err
	}
	incs, err := s.incidentRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to list incidents: %w", err)
	}
	return s.calculator.Calculate(emp, incs, ref)
}

// GetEmployeePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeePayroll(ctx context.Context, actor user.User, employeeID string) (payroll.ResultResponse, error) {
	emp, err := s.visibleEmployee(ctx, actor, employeeID)
	if err != nil {
		return payroll.ResultResponse{}, err
	}

	res, err := s.calculate(ctx, emp)
	if err != nil {
		return payroll.ResultResponse{}, err
	}
	return payroll.ToResultResponse(res), nil
}

// PayEmployee implements payroll.PayrollService. Paying twice keeps the first
// payment.
func (s *PayrollServiceImpl) PayEmployee(ctx context.Context, actor user.User, employeeID string) (payroll.PaymentResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}
	if err := access.GuardActive(actor, emp); err != nil {
		return payroll.PaymentResponse{}, err
	}

	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}
	periodID, err := period.Identifier(ref)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	payment, err := s.payrollRepo.MarkPaid(ctx, payroll.Payment{
		PeriodID:   periodID,
		EmployeeID: emp.ID,
		PaidAt:     s.now(),
		PaidBy:     actor.ID,
	})
	if err != nil {
		return payroll.PaymentResponse{}, fmt.Errorf("failed to mark employee as paid: %w", err)
	}

	slog.Info("Employee paid", "employee_id", emp.ID, "period", periodID, "paid_by", payment.PaidBy)
	return payroll.ToPaymentResponse(payment), nil
}

// ClosePeriod implements payroll.PayrollService. It needs every active
// employee paid, records the closed period and moves the reference date to the
// next one in a single transaction.
func (s *PayrollServiceImpl) ClosePeriod(ctx context.Context, actor user.User) (payroll.ClosePeriodResponse, error) {
	if !actor.IsSuperAdmin() {
		return payroll.ClosePeriodResponse{}, user.ErrSuperAdminRequired
	}

	state, err := s.loadPeriod(ctx)
	if err != nil {
		return payroll.ClosePeriodResponse{}, err
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.ClosePeriodResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	active := access.FilterActive(actor, all)
	if len(active) == 0 {
		return payroll.ClosePeriodResponse{}, payroll.ErrNoActiveEmployees
	}

	totalEarnings := decimal.Zero
	totalNet := decimal.Zero
	pending := 0
	for _, emp := range active {
		if _, ok := state.paid[emp.ID]; !ok {
			pending++
			continue
		}
		res, err := s.calculator.Calculate(emp, state.incidents, state.ref)
		if err != nil {
			return payroll.ClosePeriodResponse{}, err
		}
		totalEarnings = totalEarnings.Add(res.TotalEarnings)
		totalNet = totalNet.Add(res.NetPay)
	}
	if pending > 0 {
		return payroll.ClosePeriodResponse{}, fmt.Errorf("%w: %d employees pending", payroll.ErrPayrollIncomplete, pending)
	}

	nextRef, err := period.AdvanceToNext(state.ref)
	if err != nil {
		return payroll.ClosePeriodResponse{}, err
	}
	nextInfo, err := period.Resolve(nextRef)
	if err != nil {
		return payroll.ClosePeriodResponse{}, err
	}

	record := period.Record{
		Identifier:     state.info.Identifier,
		DisplayRange:   state.info.DisplayRange,
		Status:         period.StatusClosed,
		EmployeesPaid:  len(active),
		TotalEarnings:  totalEarnings,
		TotalNetPay:    totalNet,
		ClosedAt:       s.now(),
		ClosedBy:       actor.ID,
		NextIdentifier: nextInfo.Identifier,
	}

	err = s.db.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.payrollRepo.CreatePeriodRecord(txCtx, record); err != nil {
			return fmt.Errorf("failed to record closed period: %w", err)
		}
		if err := s.payrollRepo.SetReferenceDate(txCtx, nextRef); err != nil {
			return fmt.Errorf("failed to advance reference date: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.ClosePeriodResponse{}, err
	}

	slog.Info("Payroll period closed",
		"period", record.Identifier,
		"next_period", record.NextIdentifier,
		"employees_paid", record.EmployeesPaid,
		"total_net_pay", record.TotalNetPay.String(),
		"closed_by", actor.ID,
	)
	return payroll.ClosePeriodResponse{
		Closed: period.ToRecordResponse(record),
		Next:   period.ToResponse(nextInfo, nextRef),
	}, nil
}

// SignPayslip implements payroll.PayrollService. Only an employee user signs,
// and only their own payslip.
func (s *PayrollServiceImpl) SignPayslip(ctx context.Context, actor user.User, req payroll.SignPayslipRequest) (payroll.SignatureResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SignatureResponse{}, err
	}
	if !actor.IsEmployee() || actor.EmployeeID == nil {
		return payroll.SignatureResponse{}, user.ErrInsufficientPermissions
	}

	emp, err := s.visibleEmployee(ctx, actor, *actor.EmployeeID)
	if err != nil {
		return payroll.SignatureResponse{}, err
	}

	periodID := req.PeriodID
	if periodID == "" {
		ref, err := s.payrollRepo.GetReferenceDate(ctx)
		if err != nil {
			return payroll.SignatureResponse{}, err
		}
		if periodID, err = period.Identifier(ref); err != nil {
			return payroll.SignatureResponse{}, err
		}
	}

	sig := payroll.Signature{PeriodID: periodID, EmployeeID: emp.ID, SignedAt: s.now()}
	created, err := s.payrollRepo.SignPayslip(ctx, sig)
	if err != nil {
		return payroll.SignatureResponse{}, fmt.Errorf("failed to sign payslip: %w", err)
	}

	if !created {
		existing, err := s.payrollRepo.ListSignatures(ctx, periodID)
		if err != nil {
			return payroll.SignatureResponse{}, fmt.Errorf("failed to list signatures: %w", err)
		}
		for _, e := range existing {
			if e.EmployeeID == emp.ID {
				sig = e
				break
			}
		}
	}

	return payroll.SignatureResponse{
		EmployeeID:    emp.ID,
		PeriodID:      periodID,
		SignedAt:      sig.SignedAt.Format(time.RFC3339),
		AlreadySigned: !created,
	}, nil
}

// PayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, actor user.User, employeeID string) ([]byte, error) {
	emp, err := s.visibleEmployee(ctx, actor, employeeID)
	if err != nil {
		return nil, err
	}

	ref, err := s.payrollRepo.GetReferenceDate(ctx)
	if err != nil {
		return nil, err
	}
	info, err := period.Resolve(ref)
	if err != nil {
		return nil, err
	}
	incs, err := s.incidentRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	res, err := s.calculator.Calculate(emp, incs, ref)
	if err != nil {
		return nil, err
	}

	branchName := emp.BranchID
	if b, err := s.branchRepo.GetByID(ctx, emp.BranchID); err == nil {
		branchName = b.Name
	}

	doc := payslip.Document{
		EmployeeName:    emp.Name,
		ExternalID:      emp.ExternalID,
		RFC:             emp.RFC,
		CURP:            emp.CURP,
		NSS:             emp.NSS,
		Position:        emp.Position,
		BranchName:      branchName,
		PeriodID:        res.PeriodID,
		DisplayRange:    info.DisplayRange,
		Policy:          res.PolicyName,
		BaseSalary:      res.BaseSalary,
		Earnings:        toLines(res.Earnings),
		Deductions:      toLines(res.Deductions),
		TotalEarnings:   res.TotalEarnings,
		ISR:             res.ISRDeduction,
		IMSS:            res.IMSSDeduction,
		TotalDeductions: res.TotalDeductions,
		NetPay:          res.NetPay,
	}

	signatures, err := s.payrollRepo.ListSignatures(ctx, res.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list signatures: %w", err)
	}
	for _, sig := range signatures {
		if sig.EmployeeID == emp.ID {
			doc.SignedAt = sig.SignedAt.In(period.Location).Format("2006-01-02 15:04")
		}
	}

	return payslip.Render(doc)
}

func toLines(incs []incident.Incident) []payslip.Line {
	lines := make([]payslip.Line, 0, len(incs))
	for _, inc := range incs {
		concept := string(inc.Kind)
		if inc.Comment != "" {
			concept += " - " + inc.Comment
		}
		lines = append(lines, payslip.Line{Concept: concept, Amount: inc.Amount.Abs()})
	}
	return lines
}
