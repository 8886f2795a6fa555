package experience

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

// experienceColumns колонки таблицы experiences в порядке сканирования
var experienceColumns = []string{
	"id",
	"title",
	"description",
	"short_description",
	"location",
	"price_cents",
	"image_url",
	"duration",
	"category",
	"rating",
	"total_reviews",
	"capacity",
	"is_active",
	"created_at",
}

// Repository репозиторий для чтения каталога experiences
// Каталог для сервиса бронирования read-only: записи создает и меняет
// внешняя админка каталога
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория experiences
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive возвращает все активные experiences, отсортированные по рейтингу (DESC)
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(experienceColumns...).
		From("experiences").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("rating DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	experiences := make([]*domain.Experience, 0)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return experiences, nil
}

// GetActiveByID возвращает активный experience по ID
// Неактивный experience неотличим от отсутствующего - в обоих случаях
// возвращается ErrExperienceNotFound
func (r *Repository) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(experienceColumns...).
		From("experiences").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	exp, err := scanExperienceRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - scan experience: %v", ErrScanRow, err)
	}

	return exp, nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanExperienceRow(row scanner) (*domain.Experience, error) {
	var exp domain.Experience
	var createdAt sql.NullTime

	err := row.Scan(
		&exp.ID,
		&exp.Title,
		&exp.Description,
		&exp.ShortDescription,
		&exp.Location,
		&exp.PriceCents,
		&exp.ImageURL,
		&exp.Duration,
		&exp.Category,
		&exp.Rating,
		&exp.TotalReviews,
		&exp.Capacity,
		&exp.IsActive,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	exp.CreatedAt = createdAt.Time
	return &exp, nil
}

func scanExperience(rows *sql.Rows) (*domain.Experience, error) {
	exp, err := scanExperienceRow(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: scanExperience - scan row: %v", ErrScanRow, err)
	}
	return exp, nil
}
