package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiscountType тип скидки промокода
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// PromoCode промокод с правилами применимости и формулой скидки
// Инвариант: UsageLimit == nil ИЛИ UsageCount <= *UsageLimit
// UsageCount увеличивается только в рамках успешного бронирования,
// никогда - при простой проверке кода
type PromoCode struct {
	ID            uuid.UUID
	Code          string // Канонизирован к верхнему регистру
	DiscountType  DiscountType
	DiscountValue int64 // Проценты для percentage, центы для flat
	MaxDiscount   *int64
	MinAmount     int64
	ValidFrom     time.Time
	ValidUntil    *time.Time
	UsageCount    int64
	UsageLimit    *int64
	IsActive      bool
	CreatedAt     time.Time
}

// CanonicalPromoCode канонизирует промокод: обрезает пробелы и
// приводит к верхнему регистру
func CanonicalPromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// HasStarted проверяет, что окно действия промокода уже открылось
func (p *PromoCode) HasStarted(now time.Time) bool {
	return !now.Before(p.ValidFrom)
}

// HasExpired проверяет, что окно действия промокода закрылось
func (p *PromoCode) HasExpired(now time.Time) bool {
	return p.ValidUntil != nil && now.After(*p.ValidUntil)
}

// HasUsageLeft проверяет, что лимит использований не исчерпан
func (p *PromoCode) HasUsageLeft() bool {
	return p.UsageLimit == nil || p.UsageCount < *p.UsageLimit
}

// MeetsMinAmount проверяет минимальную сумму заказа
func (p *PromoCode) MeetsMinAmount(amountCents int64) bool {
	return amountCents >= p.MinAmount
}

// IsEligible проверяет все условия применимости промокода к сумме
// Порядок проверок совпадает с валидатором: окно действия, лимит
// использований, минимальная сумма
func (p *PromoCode) IsEligible(now time.Time, amountCents int64) bool {
	return p.HasStarted(now) &&
		!p.HasExpired(now) &&
		p.HasUsageLeft() &&
		p.MeetsMinAmount(amountCents)
}

// Discount вычисляет размер скидки для указанной суммы
// percentage: amount * value / 100 с ограничением MaxDiscount
// flat: value как есть - без ограничения суммой заказа,
// клэмп включается флагом clamp_flat_discount на уровне usecase
func (p *PromoCode) Discount(amountCents int64) int64 {
	if p.DiscountType == DiscountPercentage {
		discount := RoundHalfUp(float64(amountCents) * float64(p.DiscountValue) / 100)
		if p.MaxDiscount != nil && discount > *p.MaxDiscount {
			discount = *p.MaxDiscount
		}
		return discount
	}
	return p.DiscountValue
}
