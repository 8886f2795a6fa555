package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/booking"
)

// UseCase use case отмены бронирования
// Смена статуса и возврат ёмкости слота выполняются в одной транзакции:
// отмена либо полностью прошла, либо не тронула ни бронирование, ни слот
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute отменяет бронирование по публичному коду и возвращает ёмкость слота
func (uc *UseCase) Execute(ctx context.Context, reference string) (*domain.Booking, error) {
	uc.logger.Info("CancelBooking: reference=%s", reference)

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Бронирование читается с блокировкой строки (FOR UPDATE) -
		// конкурентная повторная отмена не вернет ёмкость дважды
		booking, err := uc.bookingRepo.GetByReference(txCtx, reference)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking %s not found", reference)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking %s: %v", reference, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking %s cannot be cancelled, status=%s",
				reference, booking.Status)
			return ErrCannotCancel
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled); err != nil {
			uc.logger.Error("CancelBooking: failed to update status for %s: %v", reference, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// Возврат ёмкости ограничен total_capacity на уровне запроса -
		// инвариант available <= total не нарушается
		if err := uc.slotRepo.RestoreCapacity(txCtx, booking.SlotID, booking.NumPeople); err != nil {
			uc.logger.Error("CancelBooking: failed to restore capacity for slot %s: %v",
				booking.SlotID, err)
			return fmt.Errorf("%w: failed to restore capacity: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking %s cancelled, %d spots restored to slot %s",
		reference, result.NumPeople, result.SlotID)

	return result, nil
}
