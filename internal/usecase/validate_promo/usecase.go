package validate_promo

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	promoRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/promocode"
	"github.com/m04kA/SMC-ExperienceService/pkg/ptr"
)

// Сообщения результата проверки - часть публичного контракта API
const (
	msgInvalidCode       = "Invalid promo code"
	msgNotYetValid       = "Promo code not yet valid"
	msgExpired           = "Promo code has expired"
	msgUsageLimitReached = "Promo code usage limit reached"
	msgMinAmountFmt      = "Minimum purchase amount is %s"
	msgApplied           = "Promo code applied successfully"
)

// UseCase use case проверки промокода
// Проверка без побочных эффектов: счетчик использований НЕ увеличивается,
// это ответственность координатора бронирования при подтвержденном
// бронировании с этим кодом
type UseCase struct {
	promoRepo         PromoRepository
	timeProvider      TimeProvider
	clampFlatDiscount bool
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(promoRepo PromoRepository, clampFlatDiscount bool, logger Logger) *UseCase {
	return &UseCase{
		promoRepo:         promoRepo,
		timeProvider:      &RealTimeProvider{},
		clampFlatDiscount: clampFlatDiscount,
		logger:            logger,
	}
}

// Execute выполняет проверку промокода для указанной суммы
// Проверки идут по порядку с остановкой на первой неудаче:
// наличие активного кода, начало окна действия, конец окна действия,
// лимит использований, минимальная сумма заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	code := domain.CanonicalPromoCode(req.Code)
	if code == "" {
		return nil, ErrCodeRequired
	}

	uc.logger.Info("ValidatePromo: code=%s, amount=%d", code, req.AmountCents)

	promo, err := uc.promoRepo.GetActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			uc.logger.Info("ValidatePromo: code=%s not found", code)
			return invalid(msgInvalidCode), nil
		}
		uc.logger.Error("ValidatePromo: failed to get promo code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get promo: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	if !promo.HasStarted(now) {
		uc.logger.Info("ValidatePromo: code=%s not yet valid", code)
		return invalid(msgNotYetValid), nil
	}

	if promo.HasExpired(now) {
		uc.logger.Info("ValidatePromo: code=%s expired", code)
		return invalid(msgExpired), nil
	}

	if !promo.HasUsageLeft() {
		uc.logger.Info("ValidatePromo: code=%s usage limit reached", code)
		return invalid(msgUsageLimitReached), nil
	}

	if !promo.MeetsMinAmount(req.AmountCents) {
		uc.logger.Info("ValidatePromo: code=%s amount=%d below minimum %d",
			code, req.AmountCents, promo.MinAmount)
		return invalid(fmt.Sprintf(msgMinAmountFmt, domain.FormatCents(promo.MinAmount))), nil
	}

	discount := promo.Discount(req.AmountCents)
	if uc.clampFlatDiscount {
		discount = domain.ClampDiscount(discount, req.AmountCents)
	}

	uc.logger.Info("ValidatePromo: code=%s valid, discount=%d", code, discount)

	return &Response{
		Valid:          true,
		Message:        msgApplied,
		DiscountType:   ptr.Ptr(string(promo.DiscountType)),
		DiscountValue:  ptr.Ptr(promo.DiscountValue),
		DiscountAmount: ptr.Ptr(discount),
	}, nil
}

func invalid(message string) *Response {
	return &Response{Valid: false, Message: message}
}
