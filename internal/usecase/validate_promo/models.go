package validate_promo

// Request модель запроса на проверку промокода
type Request struct {
	Code        string // Промокод (канонизируется внутри)
	AmountCents int64  // Сумма заказа, к которой применяется код
}

// Response результат проверки промокода
// Невалидный код - это нормальный результат, а не ошибка: плохой промокод
// не должен блокировать оформление заказа
type Response struct {
	Valid   bool
	Message string

	// Заполняются только при Valid = true
	DiscountType   *string
	DiscountValue  *int64
	DiscountAmount *int64
}
