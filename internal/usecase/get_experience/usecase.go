package get_experience

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	expRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
)

// UseCase use case для получения experience с его доступными слотами
type UseCase struct {
	experienceRepo ExperienceRepository
	slotRepo       SlotRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(experienceRepo ExperienceRepository, slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		experienceRepo: experienceRepo,
		slotRepo:       slotRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute возвращает активный experience и его слоты, отфильтрованные до
// будущих и доступных (is_available = true AND date >= сегодня),
// отсортированные по (date, time) ASC
// Неактивный experience неотличим от отсутствующего - в обоих случаях
// возвращается ErrExperienceNotFound
func (uc *UseCase) Execute(ctx context.Context, experienceID uuid.UUID) (*Response, error) {
	uc.logger.Info("GetExperience: id=%s", experienceID)

	experience, err := uc.experienceRepo.GetActiveByID(ctx, experienceID)
	if err != nil {
		if errors.Is(err, expRepo.ErrExperienceNotFound) {
			uc.logger.Warn("GetExperience: experience %s not found", experienceID)
			return nil, ErrExperienceNotFound
		}
		uc.logger.Error("GetExperience: failed to get experience %s: %v", experienceID, err)
		return nil, fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
	}

	slots, err := uc.slotRepo.ListAvailableByExperience(ctx, experienceID, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("GetExperience: failed to list slots for %s: %v", experienceID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetExperience: id=%s fetched with %d slots", experienceID, len(slots))

	return &Response{
		Experience: experience,
		Slots:      slots,
	}, nil
}
