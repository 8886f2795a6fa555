package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	"github.com/m04kA/SMC-ExperienceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExperienceService/pkg/psqlbuilder"
)

// slotColumns колонки таблицы slots в порядке сканирования
var slotColumns = []string{
	"id",
	"experience_id",
	"date",
	"time",
	"available_capacity",
	"total_capacity",
	"price_multiplier",
	"is_available",
	"created_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
// Внутри транзакции блокирует строку (FOR UPDATE), чтобы ёмкость не
// изменилась между проверкой и списанием
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	s, err := scanSlot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListAvailableByExperience возвращает доступные будущие слоты experience
// Фильтр: is_available = true AND date >= fromDate, сортировка по (date, time) ASC
func (r *Repository) ListAvailableByExperience(ctx context.Context, experienceID uuid.UUID, fromDate time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"experience_id": experienceID, "is_available": true}).
		Where(squirrel.GtOrEq{"date": fromDate.Format(domain.DateFormat)}).
		OrderBy("date ASC, time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByExperience - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByExperience - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAvailableByExperience - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByExperience - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// DecrementCapacity условно списывает ёмкость слота одним UPDATE
//
//	UPDATE slots
//	SET available_capacity = available_capacity - n,
//	    is_available = available_capacity - n > 0
//	WHERE id = ? AND available_capacity >= n
//
// Проверка и списание - одно атомарное выражение: два конкурентных
// бронирования последнего места не могут пройти оба. Если условие не
// выполнено (0 затронутых строк), возвращает ErrInsufficientCapacity.
func (r *Repository) DecrementCapacity(ctx context.Context, id uuid.UUID, numPeople int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("available_capacity", squirrel.Expr("available_capacity - ?", numPeople)).
		Set("is_available", squirrel.Expr("available_capacity - ? > 0", numPeople)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"available_capacity": numPeople}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInsufficientCapacity
	}

	return nil
}

// RestoreCapacity возвращает ёмкость слота при отмене бронирования
// Ёмкость не может превысить total_capacity (LEAST), флаг is_available
// пересчитывается в том же UPDATE
func (r *Repository) RestoreCapacity(ctx context.Context, id uuid.UUID, numPeople int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("available_capacity", squirrel.Expr("LEAST(available_capacity + ?, total_capacity)", numPeople)).
		Set("is_available", squirrel.Expr("LEAST(available_capacity + ?, total_capacity) > 0", numPeople)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RestoreCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RestoreCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RestoreCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row scanner) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.ExperienceID,
		&s.Date,
		&s.Time,
		&s.AvailableCapacity,
		&s.TotalCapacity,
		&s.PriceMultiplier,
		&s.IsAvailable,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	return &s, nil
}
