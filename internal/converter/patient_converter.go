package converter

import (
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/entity"
	"rx-prescription-api/internal/domain/repository"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:         patient.ID,
		PatientID:  patient.PatientID,
		FullName:   patient.FullName,
		Age:        patient.Age,
		Sex:        patient.Sex,
		Mobile:     patient.Mobile,
		Email:      patient.Email,
		Address:    patient.Address,
		BloodGroup: patient.BloodGroup,
		Allergies:  patient.Allergies,
		CreatedAt:  patient.CreatedAt,
	}
}

// PatientSummariesToResponses converts aggregated patient rows to DTOs
func PatientSummariesToResponses(summaries []repository.PatientSummary) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(summaries))
	for i, summary := range summaries {
		response := PatientToResponse(&summary.Patient)
		response.PrescriptionCount = summary.PrescriptionCount
		response.LastVisit = summary.LastVisit
		responses[i] = *response
	}
	return responses
}

// PatientHistoryToResponses converts visit audit entries to DTOs
func PatientHistoryToResponses(entries []entity.PatientHistory) []dto.PatientHistoryResponse {
	responses := make([]dto.PatientHistoryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.PatientHistoryResponse{
			ID:         entry.ID,
			VisitDate:  entry.VisitDate,
			Symptoms:   entry.Symptoms,
			Diagnosis:  entry.Diagnosis,
			Treatment:  entry.Treatment,
			DoctorName: entry.Doctor.FullName,
		}
	}
	return responses
}
