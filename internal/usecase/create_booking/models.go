package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	ExperienceID  uuid.UUID
	SlotID        uuid.UUID
	CustomerName  string `validate:"required,max=200"`
	CustomerEmail string `validate:"required,email"`
	CustomerPhone string `validate:"required,max=32"`
	NumPeople     int    `validate:"required,min=1"`
	PromoCode     *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                  uuid.UUID
	ExperienceID        uuid.UUID
	SlotID              uuid.UUID
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	NumPeople           int
	TotalPriceCents     int64   // Итог после скидки, без налога
	PromoCode           *string // Канонизированный код, если был передан
	DiscountAmountCents int64
	Status              string
	BookingReference    string
	CreatedAt           time.Time
}
