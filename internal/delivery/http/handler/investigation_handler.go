package handler

import (
	"net/http"

	"rx-prescription-api/internal/usecase"
	"rx-prescription-api/pkg/response"
)

type InvestigationHandler struct {
	investigationUsecase usecase.InvestigationUsecase
}

func NewInvestigationHandler(investigationUsecase usecase.InvestigationUsecase) *InvestigationHandler {
	return &InvestigationHandler{
		investigationUsecase: investigationUsecase,
	}
}

func (h *InvestigationHandler) ListInvestigations(w http.ResponseWriter, r *http.Request) {
	investigations, err := h.investigationUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list investigations")
		return
	}

	response.Success(w, http.StatusOK, "Investigations retrieved successfully", investigations)
}
