package promocode

import "errors"

var (
	// ErrPromoNotFound возвращается, когда активный промокод не найден
	ErrPromoNotFound = errors.New("promocode.repository: promo code not found")

	// ErrUsageLimitReached возвращается, когда условный инкремент счетчика
	// использований не затронул ни одной строки - лимит исчерпан
	ErrUsageLimitReached = errors.New("promocode.repository: usage limit reached")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("promocode.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("promocode.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("promocode.repository: failed to scan row")
)
