package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email      string             `json:"email" validate:"required,email"`
	Password   string             `json:"password" validate:"required,min=6"`
	UserType   string             `json:"user_type" validate:"required,oneof=doctor patient"`
	DoctorData *DoctorDataRequest `json:"doctor_data" validate:"omitempty"`
}

// DoctorDataRequest carries the profile created together with a doctor account
type DoctorDataRequest struct {
	FullName           string `json:"full_name" validate:"required,min=2"`
	Qualification      string `json:"qualification" validate:"required"`
	Specialization     string `json:"specialization" validate:"required"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	ClinicName         string `json:"clinic_name" validate:"omitempty"`
	ClinicAddress      string `json:"clinic_address" validate:"omitempty"`
	ClinicPhone        string `json:"clinic_phone" validate:"omitempty"`
	Email              string `json:"email" validate:"omitempty,email"`
	Mobile             string `json:"mobile" validate:"omitempty"`
	ExperienceYears    int    `json:"experience_years" validate:"omitempty,gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int64           `json:"expires_in"`
	User         *UserResponse   `json:"user,omitempty"`
	Profile      *DoctorResponse `json:"profile,omitempty"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
