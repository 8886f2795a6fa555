package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ExperienceID:     uuid.New(),
		SlotID:           uuid.New(),
		CustomerName:     "Jane Doe",
		CustomerEmail:    "jane@example.com",
		CustomerPhone:    "+1-555-0101",
		NumPeople:        2,
		TotalPriceCents:  3000,
		Status:           domain.StatusConfirmed,
		BookingReference: "BKAAAA0001",
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdID := uuid.New()
	createdAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO bookings .+ RETURNING id, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(createdID.String(), createdAt))

	b, err := repo.Create(context.Background(), testBooking())
	require.NoError(t, err)

	assert.Equal(t, createdID, b.ID)
	assert.Equal(t, createdAt, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateReference(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Нарушение UNIQUE по booking_reference маппится в сентинел,
	// по которому координатор повторяет транзакцию с новым кодом
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_booking_reference_key"})

	_, err := repo.Create(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrDuplicateReference)
}

func TestGetByReference(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	experienceID := uuid.New()
	slotID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE booking_reference = \$1`).
		WithArgs("BKAAAA0001").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
			id.String(),
			experienceID.String(),
			slotID.String(),
			"Jane Doe",
			"jane@example.com",
			"+1-555-0101",
			2,
			3000,
			"SUMMER10",
			300,
			"confirmed",
			"BKAAAA0001",
			time.Now(),
		))

	b, err := repo.GetByReference(context.Background(), "BKAAAA0001")
	require.NoError(t, err)

	assert.Equal(t, id, b.ID)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	require.NotNil(t, b.PromoCode)
	assert.Equal(t, "SUMMER10", *b.PromoCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByReference_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings`).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByReference(context.Background(), "BKMISSING1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE bookings SET status = \$1 WHERE id = \$2`).
		WithArgs("cancelled", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, domain.StatusCancelled)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
