package entity

import "time"

// Prescription is the parent record of an authoring transaction.
// PrescriptionID is the human-readable key ("RX" + random suffix). A
// prescription always references exactly one patient and one doctor; its line
// items share its transaction boundary and are never visible without it.
type Prescription struct {
	ID                      uint       `gorm:"primaryKey" json:"id"`
	PrescriptionID          string     `gorm:"column:prescription_id;type:varchar(20);uniqueIndex;not null" json:"prescription_id"`
	PatientID               uint       `gorm:"not null;index" json:"patient_id"`
	DoctorID                uint       `gorm:"not null;index" json:"doctor_id"`
	ChiefComplaint          string     `gorm:"type:text;not null" json:"chief_complaint"`
	HistoryOfPresentIllness string     `gorm:"type:text" json:"history_of_present_illness,omitempty"`
	PastMedicalHistory      string     `gorm:"type:text" json:"past_medical_history,omitempty"`
	PastSurgicalHistory     string     `gorm:"type:text" json:"past_surgical_history,omitempty"`
	Diagnosis               string     `gorm:"type:text" json:"diagnosis,omitempty"`
	FollowUpDate            *time.Time `gorm:"type:date" json:"follow_up_date,omitempty"`
	Advice                  string     `gorm:"type:text" json:"advice,omitempty"`
	ConsentObtained         bool       `gorm:"not null;default:false" json:"consent_obtained"`
	CreatedAt               time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient        Patient                     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor         Doctor                      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Medicines      []PrescriptionMedicine      `gorm:"foreignKey:PrescriptionID" json:"medicines,omitempty"`
	Investigations []PrescriptionInvestigation `gorm:"foreignKey:PrescriptionID" json:"investigations,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionMedicine is one ordered medicine line of a prescription.
// Row insertion order carries display order.
type PrescriptionMedicine struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PrescriptionID uint   `gorm:"not null;index" json:"prescription_id"`
	MedicineID     uint   `gorm:"not null" json:"medicine_id"`
	Dosage         string `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency      string `gorm:"type:varchar(100);not null" json:"frequency"`
	Duration       string `gorm:"type:varchar(100);not null" json:"duration"`
	Instructions   string `gorm:"type:text" json:"instructions,omitempty"`

	// Relationships
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

func (PrescriptionMedicine) TableName() string {
	return "prescription_medicines"
}

// PrescriptionInvestigation is one ordered investigation line of a prescription
type PrescriptionInvestigation struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	PrescriptionID  uint   `gorm:"not null;index" json:"prescription_id"`
	InvestigationID uint   `gorm:"not null" json:"investigation_id"`
	Notes           string `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	Investigation Investigation `gorm:"foreignKey:InvestigationID" json:"investigation,omitempty"`
}

func (PrescriptionInvestigation) TableName() string {
	return "prescription_investigations"
}
