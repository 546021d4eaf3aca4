package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2"`
	Age        int    `json:"age" validate:"required,gte=0,lte=150"`
	Sex        string `json:"sex" validate:"required,oneof=male female other"`
	Mobile     string `json:"mobile" validate:"omitempty,min=7,max=20"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address" validate:"omitempty"`
	BloodGroup string `json:"blood_group" validate:"omitempty"`
	Allergies  string `json:"allergies" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID                uint       `json:"id"`
	PatientID         string     `json:"patient_id"`
	FullName          string     `json:"full_name"`
	Age               int        `json:"age"`
	Sex               string     `json:"sex"`
	Mobile            string     `json:"mobile,omitempty"`
	Email             string     `json:"email,omitempty"`
	Address           string     `json:"address,omitempty"`
	BloodGroup        string     `json:"blood_group,omitempty"`
	Allergies         string     `json:"allergies,omitempty"`
	PrescriptionCount int        `json:"prescription_count"`
	LastVisit         *time.Time `json:"last_visit,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type PatientHistoryResponse struct {
	ID         uint      `json:"id"`
	VisitDate  time.Time `json:"visit_date"`
	Symptoms   string    `json:"symptoms,omitempty"`
	Diagnosis  string    `json:"diagnosis,omitempty"`
	Treatment  string    `json:"treatment,omitempty"`
	DoctorName string    `json:"doctor_name"`
}

type PatientHistoryListResponse struct {
	History []PatientHistoryResponse `json:"history"`
	Total   int                      `json:"total"`
}
