package http

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	PayslipPDF(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.ProcessingFilter{
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	}

	result, err := h.payrollService.ListProcessing(r.Context(), currentActor(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetEmployeePayroll(r.Context(), currentActor(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.PayEmployee(r.Context(), currentActor(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment recorded", result)
}

func (h *payrollHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ClosePeriod(r.Context(), currentActor(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period closed successfully", result)
}

func (h *payrollHandlerImpl) PayslipPDF(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	data, err := h.payrollService.PayslipPDF(r.Context(), currentActor(r), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "application/pdf", fmt.Sprintf("recibo-%s.pdf", employeeID), data)
}
