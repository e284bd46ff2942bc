package http

import (
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &vacationHandlerImpl{vacationService: vacationService}
}

func (h *vacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.vacationService.Create(r.Context(), currentActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request submitted", result)
}

func (h *vacationHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req vacation.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.vacationService.Review(r.Context(), currentActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request reviewed", result)
}
