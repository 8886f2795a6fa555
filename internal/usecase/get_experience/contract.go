package get_experience

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// ExperienceRepository интерфейс репозитория каталога experiences
type ExperienceRepository interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Experience, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListAvailableByExperience(ctx context.Context, experienceID uuid.UUID, fromDate time.Time) ([]*domain.Slot, error)
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
