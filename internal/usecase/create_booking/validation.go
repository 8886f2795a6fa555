package create_booking

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate единый инстанс валидатора, потокобезопасен и кеширует метаданные структур
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest валидирует входные данные запроса
// Серверная валидация не доверяет клиентской: обязательность полей и формат
// email перепроверяются здесь независимо от формы на клиенте
func validateRequest(req *Request) error {
	if req.ExperienceID == uuid.Nil {
		return fmt.Errorf("%w: experienceId is required", ErrMissingFields)
	}

	if req.SlotID == uuid.Nil {
		return fmt.Errorf("%w: slotId is required", ErrMissingFields)
	}

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	return nil
}
