package validate_promo

import "errors"

var (
	// ErrCodeRequired возвращается, когда промокод не передан
	ErrCodeRequired = errors.New("validate_promo: promo code is required")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_promo: internal error")
)
