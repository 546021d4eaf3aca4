package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/delivery/http/middleware"
	"rx-prescription-api/internal/pdf"
	"rx-prescription-api/internal/usecase"
	"rx-prescription-api/pkg/response"
	"rx-prescription-api/pkg/validator"

	"github.com/gorilla/mux"
)

type CertificateHandler struct {
	certificateUsecase usecase.CertificateUsecase
	renderer           *pdf.Renderer
	validator          *validator.CustomValidator
}

func NewCertificateHandler(certificateUsecase usecase.CertificateUsecase, renderer *pdf.Renderer, validator *validator.CustomValidator) *CertificateHandler {
	return &CertificateHandler{
		certificateUsecase: certificateUsecase,
		renderer:           renderer,
		validator:          validator,
	}
}

func (h *CertificateHandler) CreateCertificate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.certificateUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientNotOwned:
			response.Forbidden(w, "Patient does not belong to you")
		default:
			response.InternalServerError(w, "Failed to create certificate")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Certificate created successfully", result)
}

func (h *CertificateHandler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	certificate, err := h.certificateUsecase.GetByID(r.Context(), userID, uint(id))
	if err != nil {
		switch err {
		case usecase.ErrCertificateNotFound:
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to get certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate retrieved successfully", certificate)
}

func (h *CertificateHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	document, err := h.certificateUsecase.GetDocument(r.Context(), userID, uint(id))
	if err != nil {
		switch err {
		case usecase.ErrCertificateNotFound:
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to get certificate")
		}
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderCertificate(&buf, document); err != nil {
		response.InternalServerError(w, "Failed to render certificate")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=certificate-%s.pdf", document.CertificateID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
