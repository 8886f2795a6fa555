package experience

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExperienceID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func experienceRow(id uuid.UUID, title string, rating float64) []driver.Value {
	return []driver.Value{
		id.String(),
		title,
		"A scenic paddle along the coast",
		"Scenic coastal paddle",
		"Marina Bay",
		int64(1000),
		"https://img.example.com/kayak.jpg",
		"3 hours",
		"water",
		rating,
		128,
		10,
		true,
		time.Now(),
	}
}

func TestListActive(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(experienceColumns).
		AddRow(experienceRow(testExperienceID, "Sunset Kayak Tour", 4.9)...).
		AddRow(experienceRow(uuid.New(), "City Food Walk", 4.5)...)

	// Только активные, отсортированные по рейтингу
	mock.ExpectQuery(`SELECT .+ FROM experiences WHERE is_active = \$1 ORDER BY rating DESC`).
		WithArgs(true).
		WillReturnRows(rows)

	experiences, err := repo.ListActive(context.Background())
	require.NoError(t, err)

	require.Len(t, experiences, 2)
	assert.Equal(t, "Sunset Kayak Tour", experiences[0].Title)
	assert.Equal(t, int64(1000), experiences[0].PriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM experiences WHERE`).
		WillReturnRows(sqlmock.NewRows(experienceColumns).
			AddRow(experienceRow(testExperienceID, "Sunset Kayak Tour", 4.9)...))

	e, err := repo.GetActiveByID(context.Background(), testExperienceID)
	require.NoError(t, err)

	assert.Equal(t, testExperienceID, e.ID)
	assert.Equal(t, "Sunset Kayak Tour", e.Title)
}

func TestGetActiveByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM experiences WHERE`).
		WillReturnRows(sqlmock.NewRows(experienceColumns))

	_, err := repo.GetActiveByID(context.Background(), testExperienceID)
	assert.ErrorIs(t, err, ErrExperienceNotFound)
}
