package get_experiences

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// UseCase use case для получения списка активных experiences
// Слоты в список не включаются - они подгружаются отдельным запросом
// конкретного experience
type UseCase struct {
	experienceRepo ExperienceRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(experienceRepo ExperienceRepository, logger Logger) *UseCase {
	return &UseCase{
		experienceRepo: experienceRepo,
		logger:         logger,
	}
}

// Execute возвращает все активные experiences, отсортированные по рейтингу (DESC)
func (uc *UseCase) Execute(ctx context.Context) ([]*domain.Experience, error) {
	experiences, err := uc.experienceRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetExperiences: failed to list experiences: %v", err)
		return nil, fmt.Errorf("%w: failed to list experiences: %v", ErrInternal, err)
	}

	uc.logger.Info("GetExperiences: fetched %d experiences", len(experiences))
	return experiences, nil
}
