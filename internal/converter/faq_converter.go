package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

// FAQToResponses converts FAQ entries to DTOs, keeping their stored order
// since menu indexes are positional.
func FAQToResponses(entries []entity.FAQEntry) []dto.FAQEntryResponse {
	responses := make([]dto.FAQEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.FAQEntryResponse{
			Question: entry.Question,
			Answer:   entry.Answer,
		}
	}
	return responses
}
