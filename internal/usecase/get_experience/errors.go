package get_experience

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда активный experience не найден
	ErrExperienceNotFound = errors.New("get_experience: experience not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_experience: internal error")
)
