package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents a doctor profile owned by exactly one user account.
// The three image paths point at files resolved by the upload layer; an empty
// path means the asset was never provided.
type Doctor struct {
	ID                   uint             `gorm:"primaryKey" json:"id"`
	UserID               uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName             string           `gorm:"type:varchar(255);not null" json:"full_name"`
	Qualification        string           `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	Specialization       string           `gorm:"type:varchar(255)" json:"specialization,omitempty"`
	RegistrationNumber   string           `gorm:"type:varchar(100);uniqueIndex;not null" json:"registration_number"`
	ClinicName           string           `gorm:"type:varchar(255)" json:"clinic_name,omitempty"`
	ClinicAddress        string           `gorm:"type:text" json:"clinic_address,omitempty"`
	ClinicPhone          string           `gorm:"type:varchar(50)" json:"clinic_phone,omitempty"`
	Email                string           `gorm:"type:varchar(255)" json:"email,omitempty"`
	Mobile               string           `gorm:"type:varchar(20)" json:"mobile,omitempty"`
	ExperienceYears      int              `gorm:"default:0" json:"experience_years,omitempty"`
	ConsultationFee      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"consultation_fee,omitempty"`
	DigitalSignaturePath string           `gorm:"type:text" json:"digital_signature_path,omitempty"`
	StampImagePath       string           `gorm:"type:text" json:"stamp_image_path,omitempty"`
	LetterheadImagePath  string           `gorm:"type:text" json:"letterhead_image_path,omitempty"`
	CreatedAt            time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
