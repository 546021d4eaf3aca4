package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateDoctorProfileRequest struct {
	FullName             string           `json:"full_name" validate:"omitempty,min=2"`
	Qualification        string           `json:"qualification" validate:"omitempty"`
	Specialization       string           `json:"specialization" validate:"omitempty"`
	ClinicName           string           `json:"clinic_name" validate:"omitempty"`
	ClinicAddress        string           `json:"clinic_address" validate:"omitempty"`
	ClinicPhone          string           `json:"clinic_phone" validate:"omitempty"`
	Email                string           `json:"email" validate:"omitempty,email"`
	Mobile               string           `json:"mobile" validate:"omitempty"`
	ExperienceYears      *int             `json:"experience_years" validate:"omitempty,gte=0"`
	ConsultationFee      *decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
	DigitalSignaturePath string           `json:"digital_signature_path" validate:"omitempty"`
	StampImagePath       string           `json:"stamp_image_path" validate:"omitempty"`
	LetterheadImagePath  string           `json:"letterhead_image_path" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID                   uint             `json:"id"`
	UserID               uuid.UUID        `json:"user_id"`
	FullName             string           `json:"full_name"`
	Qualification        string           `json:"qualification,omitempty"`
	Specialization       string           `json:"specialization,omitempty"`
	RegistrationNumber   string           `json:"registration_number"`
	ClinicName           string           `json:"clinic_name,omitempty"`
	ClinicAddress        string           `json:"clinic_address,omitempty"`
	ClinicPhone          string           `json:"clinic_phone,omitempty"`
	Email                string           `json:"email,omitempty"`
	Mobile               string           `json:"mobile,omitempty"`
	ExperienceYears      int              `json:"experience_years,omitempty"`
	ConsultationFee      *decimal.Decimal `json:"consultation_fee,omitempty"`
	DigitalSignaturePath string           `json:"digital_signature_path,omitempty"`
	StampImagePath       string           `json:"stamp_image_path,omitempty"`
	LetterheadImagePath  string           `json:"letterhead_image_path,omitempty"`
}
