package cancel_booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/booking"
)

var (
	testBookingID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	testSlotID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	statuses map[uuid.UUID]domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.BookingReference] = b
	}
	return &fakeBookingRepo{bookings: m, statuses: make(map[uuid.UUID]domain.BookingStatus)}
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	b, ok := f.bookings[reference]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	f.statuses[id] = status
	return nil
}

type fakeSlotRepo struct {
	restored map[uuid.UUID]int
}

func (f *fakeSlotRepo) RestoreCapacity(_ context.Context, id uuid.UUID, numPeople int) error {
	if f.restored == nil {
		f.restored = make(map[uuid.UUID]int)
	}
	f.restored[id] += numPeople
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:               testBookingID,
		SlotID:           testSlotID,
		NumPeople:        3,
		Status:           domain.StatusConfirmed,
		BookingReference: "BKAAAA0001",
	}
}

func TestExecute(t *testing.T) {
	bookings := newFakeBookingRepo(confirmedBooking())
	slots := &fakeSlotRepo{}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	result, err := uc.Execute(context.Background(), "BKAAAA0001")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, result.Status)
	assert.Equal(t, domain.StatusCancelled, bookings.statuses[testBookingID])
	assert.Equal(t, 3, slots.restored[testSlotID], "ёмкость возвращается на размер группы")
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), "BKMISSING1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelled

	bookings := newFakeBookingRepo(booking)
	slots := &fakeSlotRepo{}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	// Повторная отмена не должна вернуть ёмкость второй раз
	_, err := uc.Execute(context.Background(), "BKAAAA0001")
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, slots.restored)
}
