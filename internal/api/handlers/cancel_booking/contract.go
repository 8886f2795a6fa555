package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// CancelBookingUseCase интерфейс use case отмены бронирования
type CancelBookingUseCase interface {
	Execute(ctx context.Context, reference string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
