package http

import (
	"net/http"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/response"
)

type BranchHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type branchHandlerImpl struct {
	branchService branch.BranchService
}

func NewBranchHandler(branchService branch.BranchService) BranchHandler {
	return &branchHandlerImpl{branchService: branchService}
}

func (h *branchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.branchService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *branchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req branch.CreateBranchRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.branchService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Branch created successfully", result)
}
