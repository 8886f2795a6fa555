package promocode

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	"github.com/m04kA/SMC-ExperienceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExperienceService/pkg/psqlbuilder"
)

// promoColumns колонки таблицы promo_codes в порядке сканирования
var promoColumns = []string{
	"id",
	"code",
	"discount_type",
	"discount_value",
	"max_discount_cents",
	"min_amount_cents",
	"valid_from",
	"valid_until",
	"usage_count",
	"usage_limit",
	"is_active",
	"created_at",
}

// Repository репозиторий для работы с промокодами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByCode получает активный промокод по канонизированному коду
// Внутри транзакции блокирует строку (FOR UPDATE), чтобы счетчик
// использований не изменился между проверкой лимита и инкрементом
func (r *Repository) GetActiveByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(promoColumns...).
		From("promo_codes").
		Where(squirrel.Eq{"code": domain.CanonicalPromoCode(code), "is_active": true})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCode - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	var promo domain.PromoCode
	var maxDiscount, usageLimit sql.NullInt64
	var validUntil, createdAt sql.NullTime

	err = row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.DiscountType,
		&promo.DiscountValue,
		&maxDiscount,
		&promo.MinAmount,
		&promo.ValidFrom,
		&validUntil,
		&promo.UsageCount,
		&usageLimit,
		&promo.IsActive,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCode - scan promo: %v", ErrScanRow, err)
	}

	if maxDiscount.Valid {
		promo.MaxDiscount = &maxDiscount.Int64
	}
	if usageLimit.Valid {
		promo.UsageLimit = &usageLimit.Int64
	}
	if validUntil.Valid {
		promo.ValidUntil = &validUntil.Time
	}
	promo.CreatedAt = createdAt.Time

	return &promo, nil
}

// IncrementUsage увеличивает счетчик использований промокода на 1
// Инкремент условный: строка не обновляется, если лимит уже исчерпан,
// поэтому счетчик не может превысить usage_limit даже при гонке
func (r *Repository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("usage_count", squirrel.Expr("usage_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("(usage_limit IS NULL OR usage_count < usage_limit)")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUsageLimitReached
	}

	return nil
}
