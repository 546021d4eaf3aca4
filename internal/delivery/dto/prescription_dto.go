package dto

import "time"

// Request DTOs

// CreatePrescriptionRequest is the full authoring payload. Exactly one of
// PatientID (existing patient) or PatientInfo (inline new patient) must be
// provided; when both are present the existing reference wins and PatientInfo
// is ignored.
type CreatePrescriptionRequest struct {
	PatientID   uint                  `json:"patient_id" validate:"omitempty,gt=0"`
	PatientInfo *CreatePatientRequest `json:"patient_info" validate:"omitempty"`

	ChiefComplaint          string `json:"chief_complaint" validate:"required"`
	HistoryOfPresentIllness string `json:"history_of_present_illness" validate:"omitempty"`
	PastMedicalHistory      string `json:"past_medical_history" validate:"omitempty"`
	PastSurgicalHistory     string `json:"past_surgical_history" validate:"omitempty"`
	Diagnosis               string `json:"diagnosis" validate:"omitempty"`
	FollowUpDate            string `json:"follow_up_date" validate:"omitempty"` // YYYY-MM-DD
	Advice                  string `json:"advice" validate:"omitempty"`
	ConsentObtained         bool   `json:"consent_obtained"`

	Medicines      []PrescriptionMedicineRequest      `json:"medicines" validate:"omitempty,dive"`
	Investigations []PrescriptionInvestigationRequest `json:"investigations" validate:"omitempty,dive"`
}

type PrescriptionMedicineRequest struct {
	MedicineID   uint   `json:"medicine_id" validate:"required,gt=0"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Instructions string `json:"instructions" validate:"omitempty"`
}

type PrescriptionInvestigationRequest struct {
	InvestigationID uint   `json:"investigation_id" validate:"required,gt=0"`
	Notes           string `json:"notes" validate:"omitempty"`
}

// Response DTOs

// CreatePrescriptionResponse returns both identifiers of the committed
// prescription: the human-readable key and the numeric primary key.
type CreatePrescriptionResponse struct {
	PrescriptionID string `json:"prescription_id"`
	ID             uint   `json:"id"`
}

type PrescriptionResponse struct {
	ID                      uint                                `json:"id"`
	PrescriptionID          string                              `json:"prescription_id"`
	Patient                 *PatientResponse                    `json:"patient,omitempty"`
	Doctor                  *DoctorResponse                     `json:"doctor,omitempty"`
	ChiefComplaint          string                              `json:"chief_complaint"`
	HistoryOfPresentIllness string                              `json:"history_of_present_illness,omitempty"`
	PastMedicalHistory      string                              `json:"past_medical_history,omitempty"`
	PastSurgicalHistory     string                              `json:"past_surgical_history,omitempty"`
	Diagnosis               string                              `json:"diagnosis,omitempty"`
	FollowUpDate            *time.Time                          `json:"follow_up_date,omitempty"`
	Advice                  string                              `json:"advice,omitempty"`
	ConsentObtained         bool                                `json:"consent_obtained"`
	Medicines               []PrescriptionMedicineResponse      `json:"medicines"`
	Investigations          []PrescriptionInvestigationResponse `json:"investigations"`
	CreatedAt               time.Time                           `json:"created_at"`
}

type PrescriptionMedicineResponse struct {
	MedicineID   uint   `json:"medicine_id"`
	Name         string `json:"name"`
	GenericName  string `json:"generic_name,omitempty"`
	Strength     string `json:"strength,omitempty"`
	Form         string `json:"form,omitempty"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}

type PrescriptionInvestigationResponse struct {
	InvestigationID uint   `json:"investigation_id"`
	Name            string `json:"name"`
	Category        string `json:"category,omitempty"`
	Notes           string `json:"notes,omitempty"`
}
