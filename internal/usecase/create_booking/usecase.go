package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/booking"
	expRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
	promoRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/promocode"
	slotRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/slot"
)

// UseCase use case для создания бронирования
// Координирует проверку ёмкости, расчет цены, применение промокода,
// создание записи бронирования и списание ёмкости слота как одну
// атомарную единицу
type UseCase struct {
	slotRepo          SlotRepository
	experienceRepo    ExperienceRepository
	promoRepo         PromoRepository
	bookingRepo       BookingRepository
	txManager         TransactionManager
	refGenerator      ReferenceGenerator
	timeProvider      TimeProvider
	clampFlatDiscount bool
	refMaxAttempts    int
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	experienceRepo ExperienceRepository,
	promoRepo PromoRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	clampFlatDiscount bool,
	refMaxAttempts int,
	logger Logger,
) *UseCase {
	if refMaxAttempts <= 0 {
		refMaxAttempts = 3
	}
	return &UseCase{
		slotRepo:          slotRepo,
		experienceRepo:    experienceRepo,
		promoRepo:         promoRepo,
		bookingRepo:       bookingRepo,
		txManager:         txManager,
		refGenerator:      &RealReferenceGenerator{},
		timeProvider:      &RealTimeProvider{},
		clampFlatDiscount: clampFlatDiscount,
		refMaxAttempts:    refMaxAttempts,
		logger:            logger,
	}
}

// Execute выполняет use case создания бронирования
// Шаги 2-8 (чтение слота, проверка ёмкости, расчет цены, инкремент
// промокода, вставка бронирования, списание ёмкости) выполняются в
// сериализуемой транзакции: два конкурентных запроса на последнее место
// не могут пройти оба. Любая ошибка откатывает транзакцию целиком -
// частичных записей не остается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: experience=%s, slot=%s, people=%d",
		req.ExperienceID, req.SlotID, req.NumPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// Конфликт уникальности кода бронирования прерывает всю транзакцию
	// (после unique violation PostgreSQL отвергает остальные запросы в ней),
	// поэтому повтор с новым кодом - это повтор всей транзакции
	var result *domain.Booking

	for attempt := 0; attempt < uc.refMaxAttempts; attempt++ {
		reference, err := uc.refGenerator.Generate()
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate reference: %v", err)
			return nil, fmt.Errorf("%w: failed to generate reference: %v", ErrInternal, err)
		}

		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			booking, err := uc.bookInTx(txCtx, req, now, reference)
			if err != nil {
				return err
			}
			result = booking
			return nil
		})

		if errors.Is(err, bookingRepo.ErrDuplicateReference) {
			uc.logger.Warn("CreateBooking: reference %s already taken, retrying (attempt %d/%d)",
				reference, attempt+1, uc.refMaxAttempts)
			continue
		}
		if err != nil {
			return nil, err
		}

		uc.logger.Info("CreateBooking: successfully created booking reference=%s", result.BookingReference)

		return &Response{
			ID:                  result.ID,
			ExperienceID:        result.ExperienceID,
			SlotID:              result.SlotID,
			CustomerName:        result.CustomerName,
			CustomerEmail:       result.CustomerEmail,
			CustomerPhone:       result.CustomerPhone,
			NumPeople:           result.NumPeople,
			TotalPriceCents:     result.TotalPriceCents,
			PromoCode:           result.PromoCode,
			DiscountAmountCents: result.DiscountAmountCents,
			Status:              string(result.Status),
			BookingReference:    result.BookingReference,
			CreatedAt:           result.CreatedAt,
		}, nil
	}

	uc.logger.Error("CreateBooking: failed to find free reference after %d attempts", uc.refMaxAttempts)
	return nil, fmt.Errorf("%w: failed to find free booking reference", ErrInternal)
}

// bookInTx выполняет шаги 2-8 бронирования внутри открытой транзакции
func (uc *UseCase) bookInTx(ctx context.Context, req *Request, now time.Time, reference string) (*domain.Booking, error) {
	// 2. Получаем слот (FOR UPDATE - строка заблокирована до конца транзакции)
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot %s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 3. Проверяем ёмкость
	if !slot.HasCapacityFor(req.NumPeople) {
		uc.logger.Warn("CreateBooking: slot %s has %d spots, requested %d",
			slot.ID, slot.AvailableCapacity, req.NumPeople)
		return nil, ErrNotEnoughCapacity
	}

	// 4. Получаем experience
	experience, err := uc.experienceRepo.GetActiveByID(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, expRepo.ErrExperienceNotFound) {
			uc.logger.Warn("CreateBooking: experience %s not found", req.ExperienceID)
			return nil, ErrExperienceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get experience %s: %v", req.ExperienceID, err)
		return nil, fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
	}

	// 5. Считаем базовую цену: цена за человека * размер группы * множитель слота
	base := domain.CalculateQuote(experience.PriceCents, req.NumPeople, slot.PriceMultiplier, 0).Base

	// 6. Применяем промокод, если он передан
	// Непригодный код молча игнорируется - бронирование проходит без скидки
	// и без инкремента счетчика (поведение отличается от отдельной проверки
	// кода, которая возвращает причину отказа)
	discount, appliedCode, err := uc.applyPromo(ctx, req.PromoCode, base, now)
	if err != nil {
		return nil, err
	}

	totalPrice := base - discount

	// 7. Создаем запись бронирования (в итог налог не входит)
	booking := &domain.Booking{
		ExperienceID:        experience.ID,
		SlotID:              slot.ID,
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		NumPeople:           req.NumPeople,
		TotalPriceCents:     totalPrice,
		PromoCode:           appliedCode,
		DiscountAmountCents: discount,
		Status:              domain.StatusConfirmed,
		BookingReference:    reference,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateReference) {
			// Пробрасываем как есть - внешний цикл повторит с новым кодом
			return nil, err
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 8. Списываем ёмкость условным UPDATE (available_capacity >= n)
	// 0 затронутых строк = мест не хватило: транзакция откатывается вместе
	// со вставленным бронированием и инкрементом промокода
	if err := uc.slotRepo.DecrementCapacity(ctx, slot.ID, req.NumPeople); err != nil {
		if errors.Is(err, slotRepo.ErrInsufficientCapacity) {
			uc.logger.Warn("CreateBooking: slot %s capacity exhausted during booking", slot.ID)
			return nil, ErrNotEnoughCapacity
		}
		uc.logger.Error("CreateBooking: failed to decrement capacity for slot %s: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to decrement capacity: %v", ErrInternal, err)
	}

	return created, nil
}

// applyPromo перепроверяет применимость промокода и считает скидку
// Возвращает размер скидки и канонизированный код для записи в бронирование.
// Код сохраняется в записи, даже если скидка не применилась - по нему
// видно, что клиент пытался его использовать.
func (uc *UseCase) applyPromo(ctx context.Context, code *string, baseCents int64, now time.Time) (int64, *string, error) {
	if code == nil || domain.CanonicalPromoCode(*code) == "" {
		return 0, nil, nil
	}

	canonical := domain.CanonicalPromoCode(*code)

	promo, err := uc.promoRepo.GetActiveByCode(ctx, canonical)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			uc.logger.Info("CreateBooking: promo %s not found, booking proceeds without discount", canonical)
			return 0, &canonical, nil
		}
		uc.logger.Error("CreateBooking: failed to get promo %s: %v", canonical, err)
		return 0, nil, fmt.Errorf("%w: failed to get promo: %v", ErrInternal, err)
	}

	if !promo.IsEligible(now, baseCents) {
		uc.logger.Info("CreateBooking: promo %s not eligible, booking proceeds without discount", canonical)
		return 0, &canonical, nil
	}

	discount := promo.Discount(baseCents)
	if uc.clampFlatDiscount {
		discount = domain.ClampDiscount(discount, baseCents)
	}

	// Инкремент условный: не превысит usage_limit даже при гонке
	// двух бронирований с последним использованием кода
	if err := uc.promoRepo.IncrementUsage(ctx, promo.ID); err != nil {
		if errors.Is(err, promoRepo.ErrUsageLimitReached) {
			uc.logger.Info("CreateBooking: promo %s usage limit hit concurrently, discount dropped", canonical)
			return 0, &canonical, nil
		}
		uc.logger.Error("CreateBooking: failed to increment promo %s usage: %v", canonical, err)
		return 0, nil, fmt.Errorf("%w: failed to increment promo usage: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: promo %s applied, discount=%d", canonical, discount)
	return discount, &canonical, nil
}
