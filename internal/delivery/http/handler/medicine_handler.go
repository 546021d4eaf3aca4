package handler

import (
	"encoding/json"
	"net/http"

	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/delivery/http/middleware"
	"rx-prescription-api/internal/usecase"
	"rx-prescription-api/pkg/response"
	"rx-prescription-api/pkg/validator"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create medicine")
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

func (h *MedicineHandler) SearchMedicines(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	medicines, err := h.medicineUsecase.Search(r.Context(), search)
	if err != nil {
		response.InternalServerError(w, "Failed to search medicines")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}

// SearchExternal queries the upstream drug-label API; the usecase falls back
// to the local catalog when the upstream is unavailable.
func (h *MedicineHandler) SearchExternal(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	if search == "" {
		response.Error(w, http.StatusBadRequest, "search query parameter is required", nil)
		return
	}

	medicines, err := h.medicineUsecase.SearchExternal(r.Context(), search)
	if err != nil {
		response.InternalServerError(w, "Failed to search medicines")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}
