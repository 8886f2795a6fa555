package get_experiences

import (
	"context"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

type GetExperiencesUseCase interface {
	Execute(ctx context.Context) ([]*domain.Experience, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
