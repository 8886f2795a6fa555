package domain

// Quote результат расчета цены бронирования
// Все суммы в центах
type Quote struct {
	Base     int64 // price * numPeople * multiplier
	Discount int64
	Subtotal int64 // Base - Discount
	Taxes    int64 // Налог от Base (до скидки)
	Total    int64 // Subtotal + Taxes
}

// CalculateQuote считает цену бронирования
// Чистая функция без побочных эффектов: база = цена за человека * размер
// группы * множитель слота, налог берется от базы ДО применения скидки.
// Вызывающий обязан ограничить discountCents базой - при discount <= base
// итог не бывает отрицательным.
func CalculateQuote(priceCents int64, numPeople int, multiplier float64, discountCents int64) Quote {
	base := RoundHalfUp(float64(priceCents) * float64(numPeople) * multiplier)
	taxes := (base*TaxRateBasisPoints + 5000) / 10000

	return Quote{
		Base:     base,
		Discount: discountCents,
		Subtotal: base - discountCents,
		Taxes:    taxes,
		Total:    base - discountCents + taxes,
	}
}

// ClampDiscount ограничивает скидку базовой суммой, чтобы итог не ушел в минус
func ClampDiscount(discountCents, baseCents int64) int64 {
	if discountCents > baseCents {
		return baseCents
	}
	if discountCents < 0 {
		return 0
	}
	return discountCents
}
