package get_experience

import "github.com/m04kA/SMC-ExperienceService/internal/domain"

// Response experience с его будущими доступными слотами
// Пустой список слотов - валидный результат, а не ошибка
type Response struct {
	Experience *domain.Experience
	Slots      []*domain.Slot
}
