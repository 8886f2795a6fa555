package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	createBooking "github.com/m04kA/SMC-ExperienceService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Суммы в центах, идентификаторы - UUID каталога
type CreateBookingRequest struct {
	ExperienceID  string  `json:"experience_id"`
	SlotID        string  `json:"slot_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	NumPeople     int     `json:"num_people"`
	PromoCode     *string `json:"promo_code,omitempty"`
}

// BookingResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Ошибка парсинга UUID равнозначна отсутствию обязательного поля
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	experienceID, err := uuid.Parse(r.ExperienceID)
	if err != nil {
		return nil, fmt.Errorf("invalid experience_id: %w", err)
	}

	slotID, err := uuid.Parse(r.SlotID)
	if err != nil {
		return nil, fmt.Errorf("invalid slot_id: %w", err)
	}

	return &createBooking.Request{
		ExperienceID:  experienceID,
		SlotID:        slotID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		NumPeople:     r.NumPeople,
		PromoCode:     r.PromoCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID.String(),
		ExperienceID:     resp.ExperienceID.String(),
		SlotID:           resp.SlotID.String(),
		CustomerName:     resp.CustomerName,
		CustomerEmail:    resp.CustomerEmail,
		CustomerPhone:    resp.CustomerPhone,
		NumPeople:        resp.NumPeople,
		TotalPrice:       resp.TotalPriceCents,
		PromoCode:        resp.PromoCode,
		DiscountAmount:   resp.DiscountAmountCents,
		Status:           resp.Status,
		BookingReference: resp.BookingReference,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
