package http

import (
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	Clock(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.DailySummary(r.Context(), currentActor(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := attendance.MonthlyReportRequest{
		EmployeeID: chi.URLParam(r, "id"),
		Month:      r.URL.Query().Get("month"),
	}

	result, err := h.attendanceService.MonthlyReport(r.Context(), currentActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Clock(r.Context(), currentActor(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", result)
}
