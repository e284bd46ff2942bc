package http

import (
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	Workforce(w http.ResponseWriter, r *http.Request)
	WorkforceSpreadsheet(w http.ResponseWriter, r *http.Request)
	Headcount(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func workforceRequest(r *http.Request) report.WorkforceRequest {
	return report.WorkforceRequest{
		Months:   queryInt(r, "months"),
		BranchID: r.URL.Query().Get("branch_id"),
	}
}

func (h *reportHandlerImpl) Workforce(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Workforce(r.Context(), currentActor(r), workforceRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) WorkforceSpreadsheet(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.WorkforceSpreadsheet(r.Context(), currentActor(r), workforceRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, xlsxContentType, "reporte-plantilla.xlsx", data)
}

func (h *reportHandlerImpl) Headcount(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Headcount(r.Context(), currentActor(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
