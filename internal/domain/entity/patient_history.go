package entity

import "time"

// PatientHistory is an append-only visit audit entry. Exactly one row is
// written per successful prescription authoring transaction; Treatment holds
// the prescribed medicine lines serialized as JSON.
type PatientHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint      `gorm:"not null;index" json:"doctor_id"`
	VisitDate time.Time `gorm:"type:date;not null" json:"visit_date"`
	Symptoms  string    `gorm:"type:text" json:"symptoms,omitempty"`
	Diagnosis string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment string    `gorm:"type:text" json:"treatment,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (PatientHistory) TableName() string {
	return "patient_history"
}
