package get_experiences

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// ExperienceResponse HTTP response model
// Цена за человека в центах
type ExperienceResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description"`
	Location         string  `json:"location"`
	Price            int64   `json:"price"`
	ImageURL         string  `json:"image_url"`
	Duration         string  `json:"duration"`
	Category         string  `json:"category"`
	Rating           float64 `json:"rating"`
	TotalReviews     int     `json:"total_reviews"`
	Capacity         int     `json:"capacity"`
	IsActive         bool    `json:"is_active"`
	CreatedAt        string  `json:"created_at"`
}

// FromDomainExperience конвертирует доменный experience в HTTP response
func FromDomainExperience(e *domain.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:               e.ID.String(),
		Title:            e.Title,
		Description:      e.Description,
		ShortDescription: e.ShortDescription,
		Location:         e.Location,
		Price:            e.PriceCents,
		ImageURL:         e.ImageURL,
		Duration:         e.Duration,
		Category:         e.Category,
		Rating:           e.Rating,
		TotalReviews:     e.TotalReviews,
		Capacity:         e.Capacity,
		IsActive:         e.IsActive,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainExperienceList конвертирует список experiences в HTTP response
func FromDomainExperienceList(experiences []*domain.Experience) []ExperienceResponse {
	result := make([]ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		result = append(result, FromDomainExperience(e))
	}
	return result
}
