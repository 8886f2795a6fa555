package domain

import (
	"time"

	"github.com/google/uuid"
)

// Experience бронируемое предложение каталога (тур или активность)
// Данные каталога для ядра бронирования неизменяемы - управляются
// внешней админкой каталога
type Experience struct {
	ID               uuid.UUID
	Title            string
	Description      string
	ShortDescription string
	Location         string
	PriceCents       int64 // Базовая цена за человека
	ImageURL         string
	Duration         string
	Category         string
	Rating           float64
	TotalReviews     int
	Capacity         int // Максимальный размер группы
	IsActive         bool
	CreatedAt        time.Time
}
