package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient record scoped to the doctor user who created it.
// PatientID is the human-readable key ("PAT" + random suffix), distinct from
// the numeric primary key.
type Patient struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PatientID  string    `gorm:"column:patient_id;type:varchar(20);uniqueIndex;not null" json:"patient_id"`
	FullName   string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Age        int       `gorm:"not null" json:"age"`
	Sex        string    `gorm:"type:varchar(10);not null" json:"sex"`
	Mobile     string    `gorm:"type:varchar(20)" json:"mobile,omitempty"`
	Email      string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address    string    `gorm:"type:text" json:"address,omitempty"`
	BloodGroup string    `gorm:"type:varchar(10)" json:"blood_group,omitempty"`
	Allergies  string    `gorm:"type:text" json:"allergies,omitempty"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Prescriptions []Prescription `gorm:"foreignKey:PatientID" json:"prescriptions,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Sex constants
const (
	SexMale   = "male"
	SexFemale = "female"
	SexOther  = "other"
)
