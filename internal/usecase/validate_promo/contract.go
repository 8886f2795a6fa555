package validate_promo

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	GetActiveByCode(ctx context.Context, code string) (*domain.PromoCode, error)
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
