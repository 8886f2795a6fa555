package get_experience

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	getExperience "github.com/m04kA/SMC-ExperienceService/internal/usecase/get_experience"
)

// SlotResponse HTTP response model слота
type SlotResponse struct {
	ID                string  `json:"id"`
	ExperienceID      string  `json:"experience_id"`
	Date              string  `json:"date"` // YYYY-MM-DD
	Time              string  `json:"time"` // HH:MM
	AvailableCapacity int     `json:"available_capacity"`
	TotalCapacity     int     `json:"total_capacity"`
	PriceMultiplier   float64 `json:"price_multiplier"`
	IsAvailable       bool    `json:"is_available"`
	CreatedAt         string  `json:"created_at"`
}

// ExperienceWithSlotsResponse HTTP response model experience со слотами
// Пустой массив slots - валидный ответ (experience без будущих слотов)
type ExperienceWithSlotsResponse struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	Location         string         `json:"location"`
	Price            int64          `json:"price"`
	ImageURL         string         `json:"image_url"`
	Duration         string         `json:"duration"`
	Category         string         `json:"category"`
	Rating           float64        `json:"rating"`
	TotalReviews     int            `json:"total_reviews"`
	Capacity         int            `json:"capacity"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        string         `json:"created_at"`
	Slots            []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getExperience.Response) *ExperienceWithSlotsResponse {
	e := resp.Experience

	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, fromDomainSlot(s))
	}

	return &ExperienceWithSlotsResponse{
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
		Slots:            slots,
	}
}

func fromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:                s.ID.String(),
		ExperienceID:      s.ExperienceID.String(),
		Date:              s.Date.Format(domain.DateFormat),
		Time:              s.Time,
		AvailableCapacity: s.AvailableCapacity,
		TotalCapacity:     s.TotalCapacity,
		PriceMultiplier:   s.PriceMultiplier,
		IsAvailable:       s.IsAvailable,
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
	}
}
