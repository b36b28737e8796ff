package dto

// Request DTOs

type AddFAQRequest struct {
	Question string `json:"question" validate:"required,min=1"`
	Answer   string `json:"answer" validate:"required,min=1"`
}

// UpdateFAQRequest carries replacement values for one entry. An empty
// field keeps the current value.
type UpdateFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Response DTOs

type FAQEntryResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQListResponse struct {
	Entries []FAQEntryResponse `json:"entries"`
	Total   int                `json:"total"`
}
