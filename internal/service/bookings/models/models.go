package models

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// BookingResponse модель бронирования для выдачи наружу
// Суммы в центах, ключи JSON совпадают с контрактом API
type BookingResponse struct {
	ID               string  `json:"id"`
	ExperienceID     string  `json:"experience_id"`
	SlotID           string  `json:"slot_id"`
	CustomerName     string  `json:"customer_name"`
	CustomerEmail    string  `json:"customer_email"`
	CustomerPhone    string  `json:"customer_phone"`
	NumPeople        int     `json:"num_people"`
	TotalPrice       int64   `json:"total_price"`
	PromoCode        *string `json:"promo_code,omitempty"`
	DiscountAmount   int64   `json:"discount_amount"`
	Status           string  `json:"status"`
	BookingReference string  `json:"booking_reference"`
	CreatedAt        string  `json:"created_at"`
}

// FromDomainBooking конвертирует доменное бронирование в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID.String(),
		ExperienceID:     b.ExperienceID.String(),
		SlotID:           b.SlotID.String(),
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		NumPeople:        b.NumPeople,
		TotalPrice:       b.TotalPriceCents,
		PromoCode:        b.PromoCode,
		DiscountAmount:   b.DiscountAmountCents,
		Status:           string(b.Status),
		BookingReference: b.BookingReference,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}
