package create_booking

import "errors"

var (
	// ErrMissingFields возвращается при отсутствующих или некорректных
	// обязательных полях запроса
	ErrMissingFields = errors.New("create_booking: missing required fields")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrExperienceNotFound возвращается, когда активный experience не найден
	ErrExperienceNotFound = errors.New("create_booking: experience not found")

	// ErrNotEnoughCapacity возвращается, когда в слоте недостаточно мест
	ErrNotEnoughCapacity = errors.New("create_booking: not enough capacity available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
