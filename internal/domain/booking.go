package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking подтвержденное резервирование мест в слоте
// Создается ровно один раз на успешную транзакцию бронирования
type Booking struct {
	ID            uuid.UUID
	ExperienceID  uuid.UUID
	SlotID        uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	NumPeople     int
	// TotalPriceCents итоговая цена после скидки, без налога
	// (налог считается на лету ценовым движком и в запись не попадает)
	TotalPriceCents     int64
	PromoCode           *string // Канонизированный код, если применялся
	DiscountAmountCents int64
	Status              BookingStatus
	BookingReference    string
	CreatedAt           time.Time
}

// IsActive проверяет, что бронирование все еще удерживает места слота
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled проверяет, что бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
