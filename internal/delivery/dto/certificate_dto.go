package dto

import "time"

// Request DTOs

type CreateCertificateRequest struct {
	PatientID       uint   `json:"patient_id" validate:"required,gt=0"`
	CertificateType string `json:"certificate_type" validate:"required"`
	ValidUntil      string `json:"valid_until" validate:"omitempty"` // YYYY-MM-DD
	Content         string `json:"content" validate:"omitempty"`
	Diagnosis       string `json:"diagnosis" validate:"omitempty"`
	Recommendations string `json:"recommendations" validate:"omitempty"`
	Restrictions    string `json:"restrictions" validate:"omitempty"`
}

// Response DTOs

type CreateCertificateResponse struct {
	CertificateID string `json:"certificate_id"`
	ID            uint   `json:"id"`
}

type CertificateResponse struct {
	ID              uint             `json:"id"`
	CertificateID   string           `json:"certificate_id"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	Doctor          *DoctorResponse  `json:"doctor,omitempty"`
	CertificateType string           `json:"certificate_type"`
	IssueDate       time.Time        `json:"issue_date"`
	ValidUntil      *time.Time       `json:"valid_until,omitempty"`
	Content         string           `json:"content,omitempty"`
	Diagnosis       string           `json:"diagnosis,omitempty"`
	Recommendations string           `json:"recommendations,omitempty"`
	Restrictions    string           `json:"restrictions,omitempty"`
}
