package get_experiences

import (
	"context"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// ExperienceRepository интерфейс репозитория каталога experiences
type ExperienceRepository interface {
	ListActive(ctx context.Context) ([]*domain.Experience, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
