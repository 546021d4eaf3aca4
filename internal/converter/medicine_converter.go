package converter

import (
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/entity"
)

// MedicineToResponse converts a Medicine entity to MedicineResponse DTO
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:           medicine.ID,
		Name:         medicine.Name,
		GenericName:  medicine.GenericName,
		Brand:        medicine.Brand,
		Strength:     medicine.Strength,
		Form:         medicine.Form,
		Manufacturer: medicine.Manufacturer,
		Schedule:     medicine.Schedule,
	}
}

// MedicinesToResponses converts a slice of Medicine entities to DTOs
func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}

// InvestigationsToResponses converts a slice of Investigation entities to DTOs
func InvestigationsToResponses(investigations []entity.Investigation) []dto.InvestigationResponse {
	responses := make([]dto.InvestigationResponse, len(investigations))
	for i, investigation := range investigations {
		responses[i] = dto.InvestigationResponse{
			ID:       investigation.ID,
			Name:     investigation.Name,
			Category: investigation.Category,
		}
	}
	return responses
}
