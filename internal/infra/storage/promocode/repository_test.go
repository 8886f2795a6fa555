package promocode

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

var testPromoID = uuid.MustParse("33333333-3333-3333-3333-333333333333")

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestGetActiveByCode(t *testing.T) {
	repo, mock := newMockRepo(t)

	validFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	validUntil := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM promo_codes WHERE`).
		WithArgs("SUMMER10", true).
		WillReturnRows(sqlmock.NewRows(promoColumns).AddRow(
			testPromoID.String(),
			"SUMMER10",
			"percentage",
			10,
			500,
			1000,
			validFrom,
			validUntil,
			5,
			100,
			true,
			time.Now(),
		))

	promo, err := repo.GetActiveByCode(context.Background(), "SUMMER10")
	require.NoError(t, err)

	assert.Equal(t, testPromoID, promo.ID)
	assert.Equal(t, domain.DiscountPercentage, promo.DiscountType)
	assert.Equal(t, int64(10), promo.DiscountValue)
	require.NotNil(t, promo.MaxDiscount)
	assert.Equal(t, int64(500), *promo.MaxDiscount)
	require.NotNil(t, promo.ValidUntil)
	assert.Equal(t, validUntil, *promo.ValidUntil)
	require.NotNil(t, promo.UsageLimit)
	assert.Equal(t, int64(100), *promo.UsageLimit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByCode_Canonicalizes(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM promo_codes WHERE`).
		WithArgs("SUMMER10", true).
		WillReturnRows(sqlmock.NewRows(promoColumns))

	// Код приводится к каноническому виду до запроса
	_, err := repo.GetActiveByCode(context.Background(), "  summer10 ")
	assert.ErrorIs(t, err, ErrPromoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByCode_NullableFields(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Бессрочный безлимитный код без max_discount
	mock.ExpectQuery(`SELECT .+ FROM promo_codes WHERE`).
		WillReturnRows(sqlmock.NewRows(promoColumns).AddRow(
			testPromoID.String(),
			"FLAT2",
			"flat",
			200,
			nil,
			0,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			nil,
			0,
			nil,
			true,
			time.Now(),
		))

	promo, err := repo.GetActiveByCode(context.Background(), "FLAT2")
	require.NoError(t, err)

	assert.Nil(t, promo.MaxDiscount)
	assert.Nil(t, promo.ValidUntil)
	assert.Nil(t, promo.UsageLimit)
}

func TestIncrementUsage(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE promo_codes SET usage_count = usage_count \+ 1 WHERE id = \$1 AND \(usage_limit IS NULL OR usage_count < usage_limit\)`).
		WithArgs(testPromoID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementUsage(context.Background(), testPromoID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementUsage_LimitReached(t *testing.T) {
	repo, mock := newMockRepo(t)

	// 0 затронутых строк: лимит выбран конкурентным бронированием
	mock.ExpectExec(`UPDATE promo_codes SET usage_count`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementUsage(context.Background(), testPromoID)
	assert.ErrorIs(t, err, ErrUsageLimitReached)
}
