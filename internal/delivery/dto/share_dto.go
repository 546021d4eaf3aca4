package dto

import "time"

// Request DTOs

// ShareEmailRequest sends free-form content to a recipient, optionally with
// the rendered prescription document attached.
type ShareEmailRequest struct {
	To             string `json:"to" validate:"required,email"`
	Subject        string `json:"subject" validate:"required"`
	Content        string `json:"content" validate:"required"`
	PrescriptionID uint   `json:"prescription_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type TempLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UploadResponse struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	FileURL  string `json:"file_url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}
