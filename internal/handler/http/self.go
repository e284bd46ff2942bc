package http

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
)

// SelfHandler serves the employee portal. Every route acts on the actor's own
// linked employee record.
type SelfHandler interface {
	Payroll(w http.ResponseWriter, r *http.Request)
	Incidents(w http.ResponseWriter, r *http.Request)
	Vacations(w http.ResponseWriter, r *http.Request)
	AttendanceToday(w http.ResponseWriter, r *http.Request)
	SignPayslip(w http.ResponseWriter, r *http.Request)
	PayslipPDF(w http.ResponseWriter, r *http.Request)
}

type selfHandlerImpl struct {
	payrollService    payroll.PayrollService
	incidentService   incident.IncidentService
	vacationService   vacation.VacationService
	attendanceService attendance.AttendanceService
}

func NewSelfHandler(
	payrollService payroll.PayrollService,
	incidentService incident.IncidentService,
	vacationService vacation.VacationService,
	attendanceService attendance.AttendanceService,
) SelfHandler {
	return &selfHandlerImpl{
		payrollService:    payrollService,
		incidentService:   incidentService,
		vacationService:   vacationService,
		attendanceService: attendanceService,
	}
}

// linkedEmployee returns the actor's employee ID, writing the error response
// when the account has none.
func linkedEmployee(w http.ResponseWriter, actor user.User) (string, bool) {
	if actor.EmployeeID == nil {
		response.HandleError(w, user.ErrEmployeeLinkMissing)
		return "", false
	}
	return *actor.EmployeeID, true
}

func (h *selfHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	actor := currentActor(r)
	employeeID, ok := linkedEmployee(w, actor)
	if !ok {
		return
	}

	result, err := h.payrollService.GetEmployeePayroll(r.Context(), actor, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *selfHandlerImpl) Incidents(w http.ResponseWriter, r *http.Request) {
	actor := currentActor(r)
	employeeID, ok := linkedEmployee(w, actor)
	if !ok {
		return
	}

	req := incident.ListIncidentRequest{
		EmployeeID: employeeID,
		PeriodID:   r.URL.Query().Get("period"),
	}
	results, err := h.incidentService.ListByEmployee(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *selfHandlerImpl) Vacations(w http.ResponseWriter, r *http.Request) {
	actor := currentActor(r)
	employeeID, ok := linkedEmployee(w, actor)
	if !ok {
		return
	}

	result, err := h.vacationService.GetEmployeeVacations(r.Context(), actor, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceToday returns the actor's own row of the daily summary.
func (h *selfHandlerImpl) AttendanceToday(w http.ResponseWriter, r *http.Request) {
	actor := currentActor(r)
	employeeID, ok := linkedEmployee(w, actor)
	if !ok {
		return
	}

	summary, err := h.attendanceService.DailySummary(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	for _, entry := range summary.Entries {
		if entry.EmployeeID == employeeID {
			response.Success(w, entry)
			return
		}
	}
	// Archived employees drop out of the summary.
	response.HandleError(w, employee.ErrEmployeeNotActive)
}

func (h *selfHandlerImpl) SignPayslip(w http.ResponseWriter, r *http.Request) {
	var req payroll.SignPayslipRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.payrollService.SignPayslip(r.Context(), currentActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip signed", result)
}

func (h *selfHandlerImpl) PayslipPDF(w http.ResponseWriter, r *http.Request) {
	actor := currentActor(r)
	employeeID, ok := linkedEmployee(w, actor)
	if !ok {
		return
	}

	data, err := h.payrollService.PayslipPDF(r.Context(), actor, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "application/pdf", fmt.Sprintf("recibo-%s.pdf", employeeID), data)
}
