package validate_promo

import (
	validatePromo "github.com/m04kA/SMC-ExperienceService/internal/usecase/validate_promo"
)

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	Code   string `json:"code"`
	Amount int64  `json:"amount"`
}

// ValidatePromoResponse HTTP response model
// Поля скидки присутствуют только при valid = true
type ValidatePromoResponse struct {
	Valid          bool    `json:"valid"`
	Message        string  `json:"message"`
	DiscountType   *string `json:"discount_type,omitempty"`
	DiscountValue  *int64  `json:"discount_value,omitempty"`
	DiscountAmount *int64  `json:"discount_amount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidatePromoRequest) ToUseCaseRequest() *validatePromo.Request {
	return &validatePromo.Request{
		Code:        r.Code,
		AmountCents: r.Amount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validatePromo.Response) *ValidatePromoResponse {
	return &ValidatePromoResponse{
		Valid:          resp.Valid,
		Message:        resp.Message,
		DiscountType:   resp.DiscountType,
		DiscountValue:  resp.DiscountValue,
		DiscountAmount: resp.DiscountAmount,
	}
}
