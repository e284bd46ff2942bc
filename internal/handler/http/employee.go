package http

import (
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)

	// Sub-resources
	ListIncidents(w http.ResponseWriter, r *http.Request)
	CreateIncident(w http.ResponseWriter, r *http.Request)
	ListVacations(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	incidentService incident.IncidentService
	vacationService vacation.VacationService
}

func NewEmployeeHandler(
	employeeService employee.EmployeeService,
	incidentService incident.IncidentService,
	vacationService vacation.VacationService,
) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		incidentService: incidentService,
		vacationService: vacationService,
	}
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := employee.EmployeeFilter{
		Query:     q.Get("q"),
		BranchID:  q.Get("branch_id"),
		Status:    q.Get("status"),
		Page:      queryInt(r, "page"),
		PageSize:  queryInt(r, "page_size"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	result, err := h.employeeService.ListEmployees(r.Context(), currentActor(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetEmployee(r.Context(), currentActor(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employeeService.UpdateEmployee(r.Context(), currentActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

func (h *employeeHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ArchiveEmployee(r.Context(), currentActor(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee archived successfully", result)
}

// ==================== SUB-RESOURCES ====================

func (h *employeeHandlerImpl) ListIncidents(w http.ResponseWriter, r *http.Request) {
	req := incident.ListIncidentRequest{
		EmployeeID: chi.URLParam(r, "id"),
		PeriodID:   r.URL.Query().Get("period"),
	}

	results, err := h.incidentService.ListByEmployee(r.Context(), currentActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *employeeHandlerImpl) CreateIncident(w http.ResponseWriter, r *http.Request) {
	var req incident.CreateIncidentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.incidentService.Create(r.Context(), currentActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Incident recorded successfully", result)
}

func (h *employeeHandlerImpl) ListVacations(w http.ResponseWriter, r *http.Request) {
	result, err := h.vacationService.GetEmployeeVacations(r.Context(), currentActor(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
