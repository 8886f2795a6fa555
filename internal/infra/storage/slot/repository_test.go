package slot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSlotID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func slotRows() *sqlmock.Rows {
	return sqlmock.NewRows(slotColumns).AddRow(
		testSlotID.String(),
		uuid.New().String(),
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		"09:00",
		5,
		10,
		1.5,
		true,
		time.Now(),
	)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM slots WHERE id = \$1`).
		WithArgs(testSlotID).
		WillReturnRows(slotRows())

	s, err := repo.GetByID(context.Background(), testSlotID)
	require.NoError(t, err)

	assert.Equal(t, testSlotID, s.ID)
	assert.Equal(t, 5, s.AvailableCapacity)
	assert.Equal(t, 1.5, s.PriceMultiplier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM slots`).
		WillReturnRows(sqlmock.NewRows(slotColumns))

	_, err := repo.GetByID(context.Background(), testSlotID)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestListAvailableByExperience(t *testing.T) {
	repo, mock := newMockRepo(t)
	experienceID := uuid.New()
	fromDate := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Только будущие доступные слоты, сортировка по дате и времени
	mock.ExpectQuery(`SELECT .+ FROM slots WHERE .+ ORDER BY date ASC, time ASC`).
		WillReturnRows(slotRows())

	slots, err := repo.ListAvailableByExperience(context.Background(), experienceID, fromDate)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAvailableByExperience_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM slots`).
		WillReturnRows(sqlmock.NewRows(slotColumns))

	slots, err := repo.ListAvailableByExperience(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestDecrementCapacity(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE slots SET available_capacity = available_capacity - \$1, is_available = available_capacity - \$2 > 0 WHERE id = \$3 AND available_capacity >= \$4`).
		WithArgs(2, 2, testSlotID, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DecrementCapacity(context.Background(), testSlotID, 2)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementCapacity_Insufficient(t *testing.T) {
	repo, mock := newMockRepo(t)

	// 0 затронутых строк: условие available_capacity >= n не выполнено
	mock.ExpectExec(`UPDATE slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DecrementCapacity(context.Background(), testSlotID, 5)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
}

func TestRestoreCapacity(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE slots SET available_capacity = LEAST\(available_capacity \+ \$1, total_capacity\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RestoreCapacity(context.Background(), testSlotID, 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreCapacity_SlotMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RestoreCapacity(context.Background(), testSlotID, 3)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
