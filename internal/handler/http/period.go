package http

import (
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
)

type PeriodHandler interface {
	Current(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type periodHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPeriodHandler(payrollService payroll.PayrollService) PeriodHandler {
	return &periodHandlerImpl{payrollService: payrollService}
}

func (h *periodHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.CurrentPeriod(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Resolve maps an arbitrary date to its period without touching the clock.
func (h *periodHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	ref, err := period.ParseReferenceDate(r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	info, err := period.Resolve(ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, period.ToResponse(info, ref), &response.Meta{
		PeriodID:      info.Identifier,
		ReferenceDate: period.DayKey(ref),
	})
}

func (h *periodHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	results, err := h.payrollService.ListPeriodHistory(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
