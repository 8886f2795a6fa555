package get_experience

import (
	"context"

	"github.com/google/uuid"

	getExperience "github.com/m04kA/SMC-ExperienceService/internal/usecase/get_experience"
)

type GetExperienceUseCase interface {
	Execute(ctx context.Context, experienceID uuid.UUID) (*getExperience.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
