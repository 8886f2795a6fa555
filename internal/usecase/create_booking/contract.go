package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	"github.com/m04kA/SMC-ExperienceService/pkg/bookref"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
	DecrementCapacity(ctx context.Context, id uuid.UUID, numPeople int) error
}

// ExperienceRepository интерфейс репозитория каталога experiences
type ExperienceRepository interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Experience, error)
}

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	GetActiveByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReferenceGenerator интерфейс генератора кодов бронирования (для тестирования)
type ReferenceGenerator interface {
	Generate() (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// RealReferenceGenerator генератор кодов бронирования для production
type RealReferenceGenerator struct{}

// Generate генерирует код бронирования
func (g *RealReferenceGenerator) Generate() (string, error) {
	return bookref.Generate()
}
