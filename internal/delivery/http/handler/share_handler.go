package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/delivery/http/middleware"
	"rx-prescription-api/internal/usecase"
	"rx-prescription-api/pkg/response"
	"rx-prescription-api/pkg/validator"

	"github.com/gorilla/mux"
)

type ShareHandler struct {
	shareUsecase usecase.ShareUsecase
	validator    *validator.CustomValidator
}

func NewShareHandler(shareUsecase usecase.ShareUsecase, validator *validator.CustomValidator) *ShareHandler {
	return &ShareHandler{
		shareUsecase: shareUsecase,
		validator:    validator,
	}
}

func (h *ShareHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ShareEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.shareUsecase.SendEmail(r.Context(), userID, &req); err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to send email")
		}
		return
	}

	response.Success(w, http.StatusOK, "Email sent successfully", nil)
}

func (h *ShareHandler) CreateTempLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	link, err := h.shareUsecase.CreateTempLink(r.Context(), userID, uint(id))
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to create temporary link")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Temporary link created successfully", link)
}
