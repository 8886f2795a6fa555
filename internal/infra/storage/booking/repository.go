package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	"github.com/m04kA/SMC-ExperienceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExperienceService/pkg/psqlbuilder"
)

// uniqueViolationCode SQLSTATE код нарушения уникальности PostgreSQL
const uniqueViolationCode = "23505"

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"experience_id",
	"slot_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"num_people",
	"total_price_cents",
	"promo_code",
	"discount_amount_cents",
	"status",
	"booking_reference",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её -
// координатор бронирования вызывает Create вместе со списанием ёмкости
// слота в одной сериализуемой транзакции.
// При конфликте уникальности booking_reference возвращает
// ErrDuplicateReference - вызывающий генерирует новый код и повторяет.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"experience_id",
			"slot_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"num_people",
			"total_price_cents",
			"promo_code",
			"discount_amount_cents",
			"status",
			"booking_reference",
		).
		Values(
			b.ExperienceID,
			b.SlotID,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.NumPeople,
			b.TotalPriceCents,
			b.PromoCode,
			b.DiscountAmountCents,
			b.Status,
			b.BookingReference,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByReference получает бронирование по публичному коду
// Внутри транзакции блокирует строку (FOR UPDATE) - используется при отмене
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_reference": reference})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	var b domain.Booking
	var promoCode sql.NullString
	var createdAt sql.NullTime

	err = row.Scan(
		&b.ID,
		&b.ExperienceID,
		&b.SlotID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.NumPeople,
		&b.TotalPriceCents,
		&promoCode,
		&b.DiscountAmountCents,
		&b.Status,
		&b.BookingReference,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - scan booking: %v", ErrScanRow, err)
	}

	if promoCode.Valid {
		b.PromoCode = &promoCode.String
	}
	b.CreatedAt = createdAt.Time

	return &b, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникальности
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
