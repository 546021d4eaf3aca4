package dto

// Request DTOs

type CreateMedicineRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	GenericName  string `json:"generic_name" validate:"omitempty"`
	Brand        string `json:"brand" validate:"omitempty"`
	Strength     string `json:"strength" validate:"omitempty"`
	Form         string `json:"form" validate:"omitempty"`
	Manufacturer string `json:"manufacturer" validate:"omitempty"`
	Schedule     string `json:"schedule" validate:"omitempty"`
}

// Response DTOs

type MedicineResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	GenericName  string `json:"generic_name,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Strength     string `json:"strength,omitempty"`
	Form         string `json:"form,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Schedule     string `json:"schedule,omitempty"`
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total"`
}

// ExternalMedicineResponse is a catalog hit from the upstream drug-label API.
// These rows are not persisted; the client may submit them back through
// CreateMedicineRequest.
type ExternalMedicineResponse struct {
	Name         string `json:"name"`
	GenericName  string `json:"generic_name,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Strength     string `json:"strength,omitempty"`
	Form         string `json:"form,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
}
