package http

import (
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/bonus"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BonusHandler interface {
	ListTemplates(w http.ResponseWriter, r *http.Request)
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	bonusService bonus.BonusService
}

func NewBonusHandler(bonusService bonus.BonusService) BonusHandler {
	return &bonusHandlerImpl{bonusService: bonusService}
}

func (h *bonusHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	results, err := h.bonusService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *bonusHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.bonusService.CreateTemplate(r.Context(), currentActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus template created successfully", result)
}

func (h *bonusHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	result, err := h.bonusService.Preview(r.Context(), currentActor(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req bonus.AssignRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.bonusService.Assign(r.Context(), currentActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonuses assigned successfully", result)
}
