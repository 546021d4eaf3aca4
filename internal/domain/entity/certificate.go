package entity

import "time"

// Certificate represents a medical certificate issued by a doctor for a patient.
// CertificateID is the human-readable key ("CERT" + random suffix).
type Certificate struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CertificateID   string     `gorm:"column:certificate_id;type:varchar(20);uniqueIndex;not null" json:"certificate_id"`
	PatientID       uint       `gorm:"not null;index" json:"patient_id"`
	DoctorID        uint       `gorm:"not null;index" json:"doctor_id"`
	CertificateType string     `gorm:"type:varchar(100);not null" json:"certificate_type"`
	IssueDate       time.Time  `gorm:"type:date;not null" json:"issue_date"`
	ValidUntil      *time.Time `gorm:"type:date" json:"valid_until,omitempty"`
	Content         string     `gorm:"type:text" json:"content,omitempty"`
	Diagnosis       string     `gorm:"type:text" json:"diagnosis,omitempty"`
	Recommendations string     `gorm:"type:text" json:"recommendations,omitempty"`
	Restrictions    string     `gorm:"type:text" json:"restrictions,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Certificate) TableName() string {
	return "certificates"
}
