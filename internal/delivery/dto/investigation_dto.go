package dto

// Response DTOs

type InvestigationResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type InvestigationListResponse struct {
	Investigations []InvestigationResponse `json:"investigations"`
	Total          int                     `json:"total"`
}
