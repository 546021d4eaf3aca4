package converter

import (
	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/domain/entity"
	"rx-prescription-api/internal/pdf"
)

// PrescriptionToResponse converts a joined Prescription entity to its DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	medicines := make([]dto.PrescriptionMedicineResponse, len(prescription.Medicines))
	for i, line := range prescription.Medicines {
		medicines[i] = dto.PrescriptionMedicineResponse{
			MedicineID:   line.MedicineID,
			Name:         line.Medicine.Name,
			GenericName:  line.Medicine.GenericName,
			Strength:     line.Medicine.Strength,
			Form:         line.Medicine.Form,
			Dosage:       line.Dosage,
			Frequency:    line.Frequency,
			Duration:     line.Duration,
			Instructions: line.Instructions,
		}
	}

	investigations := make([]dto.PrescriptionInvestigationResponse, len(prescription.Investigations))
	for i, line := range prescription.Investigations {
		investigations[i] = dto.PrescriptionInvestigationResponse{
			InvestigationID: line.InvestigationID,
			Name:            line.Investigation.Name,
			Category:        line.Investigation.Category,
			Notes:           line.Notes,
		}
	}

	return &dto.PrescriptionResponse{
		ID:                      prescription.ID,
		PrescriptionID:          prescription.PrescriptionID,
		Patient:                 PatientToResponse(&prescription.Patient),
		Doctor:                  DoctorToResponse(&prescription.Doctor),
		ChiefComplaint:          prescription.ChiefComplaint,
		HistoryOfPresentIllness: prescription.HistoryOfPresentIllness,
		PastMedicalHistory:      prescription.PastMedicalHistory,
		PastSurgicalHistory:     prescription.PastSurgicalHistory,
		Diagnosis:               prescription.Diagnosis,
		FollowUpDate:            prescription.FollowUpDate,
		Advice:                  prescription.Advice,
		ConsentObtained:         prescription.ConsentObtained,
		Medicines:               medicines,
		Investigations:          investigations,
		CreatedAt:               prescription.CreatedAt,
	}
}

// PrescriptionToDocument flattens a joined Prescription into the renderer's
// denormalized view
func PrescriptionToDocument(prescription *entity.Prescription) *pdf.PrescriptionDocument {
	if prescription == nil {
		return nil
	}

	medicines := make([]pdf.MedicineLine, len(prescription.Medicines))
	for i, line := range prescription.Medicines {
		medicines[i] = pdf.MedicineLine{
			Name:         line.Medicine.Name,
			Strength:     line.Medicine.Strength,
			Dosage:       line.Dosage,
			Frequency:    line.Frequency,
			Duration:     line.Duration,
			Instructions: line.Instructions,
		}
	}

	investigations := make([]pdf.InvestigationLine, len(prescription.Investigations))
	for i, line := range prescription.Investigations {
		investigations[i] = pdf.InvestigationLine{
			Name:  line.Investigation.Name,
			Notes: line.Notes,
		}
	}

	return &pdf.PrescriptionDocument{
		PrescriptionID:          prescription.PrescriptionID,
		CreatedAt:               prescription.CreatedAt,
		ChiefComplaint:          prescription.ChiefComplaint,
		HistoryOfPresentIllness: prescription.HistoryOfPresentIllness,
		PastMedicalHistory:      prescription.PastMedicalHistory,
		PastSurgicalHistory:     prescription.PastSurgicalHistory,
		Diagnosis:               prescription.Diagnosis,
		Advice:                  prescription.Advice,
		FollowUpDate:            prescription.FollowUpDate,
		ConsentObtained:         prescription.ConsentObtained,
		Patient:                 patientBlock(&prescription.Patient),
		Doctor:                  doctorBlock(&prescription.Doctor),
		Medicines:               medicines,
		Investigations:          investigations,
	}
}

func patientBlock(patient *entity.Patient) pdf.PatientBlock {
	return pdf.PatientBlock{
		FullName: patient.FullName,
		Age:      patient.Age,
		Sex:      patient.Sex,
		Mobile:   patient.Mobile,
	}
}

func doctorBlock(doctor *entity.Doctor) pdf.DoctorBlock {
	return pdf.DoctorBlock{
		FullName:             doctor.FullName,
		Qualification:        doctor.Qualification,
		RegistrationNumber:   doctor.RegistrationNumber,
		ClinicName:           doctor.ClinicName,
		ClinicAddress:        doctor.ClinicAddress,
		ClinicPhone:          doctor.ClinicPhone,
		LetterheadImagePath:  doctor.LetterheadImagePath,
		DigitalSignaturePath: doctor.DigitalSignaturePath,
		StampImagePath:       doctor.StampImagePath,
	}
}
