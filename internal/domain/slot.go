package domain

import (
	"time"

	"github.com/google/uuid"
)

// Slot бронируемый интервал даты/времени для experience
// Инвариант: 0 <= AvailableCapacity <= TotalCapacity
// Ёмкость изменяется только координатором бронирования при подтверждении
// или отмене бронирования
type Slot struct {
	ID                uuid.UUID
	ExperienceID      uuid.UUID
	Date              time.Time
	Time              string // HH:MM
	AvailableCapacity int
	TotalCapacity     int
	PriceMultiplier   float64 // Множитель базовой цены для этого времени
	IsAvailable       bool    // Производный флаг: AvailableCapacity > 0
	CreatedAt         time.Time
}

// HasCapacityFor проверяет, вмещает ли слот группу из n человек
func (s *Slot) HasCapacityFor(n int) bool {
	return s.AvailableCapacity >= n
}

// IsSoldOut проверяет, что свободных мест не осталось
func (s *Slot) IsSoldOut() bool {
	return s.AvailableCapacity <= 0
}

// IsPartiallyBooked проверяет, что занята часть мест, но не все
func (s *Slot) IsPartiallyBooked() bool {
	return s.AvailableCapacity > 0 && s.AvailableCapacity < s.TotalCapacity
}

// OccupancyRate возвращает заполненность слота в процентах (0-100)
func (s *Slot) OccupancyRate() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	occupied := s.TotalCapacity - s.AvailableCapacity
	return float64(occupied) / float64(s.TotalCapacity) * 100
}
