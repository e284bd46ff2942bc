package http

import (
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context(), currentActor(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
