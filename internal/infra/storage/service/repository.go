package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/pkg/dbmetrics"
	"github.com/daleelashes/booking-service/pkg/psqlbuilder"
)

const (
	tableServices = "services"

	pqUniqueViolation = "23505"
)

var serviceColumns = []string{
	"id",
	"slug",
	"name",
	"description",
	"price",
	"duration_minutes",
	"active",
	"created_at",
	"updated_at",
}

// Repository - репозиторий для работы с услугами салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый репозиторий услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableServices).
		Columns("slug", "name", "description", "price", "duration_minutes", "active").
		Values(svc.Slug, svc.Name, svc.Description, svc.Price, svc.DurationMinutes, svc.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - building insert query: %v", ErrBuildQuery, err)
	}

	created := *svc
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, fmt.Errorf("%w: Create - slug %q", ErrSlugExists, svc.Slug)
		}
		return nil, fmt.Errorf("%w: Create - executing insert query: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetBySlug возвращает услугу по slug независимо от активности
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(tableServices).
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - building select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: GetBySlug - slug %q", ErrServiceNotFound, slug)
		}
		return nil, fmt.Errorf("%w: GetBySlug - scanning row: %v", ErrScanRow, err)
	}

	return svc, nil
}

// GetActiveBySlug возвращает активную услугу по slug
func (r *Repository) GetActiveBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(tableServices).
		Where(sq.Eq{"slug": slug, "active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlug - building select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: GetActiveBySlug - slug %q", ErrServiceNotFound, slug)
		}
		return nil, fmt.Errorf("%w: GetActiveBySlug - scanning row: %v", ErrScanRow, err)
	}

	return svc, nil
}

// List возвращает список услуг, отсортированный по имени
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From(tableServices).
		OrderBy("name ASC")
	if !includeInactive {
		builder = builder.Where(sq.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - building select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - executing select query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scanning row: %v", ErrScanRow, err)
		}
		services = append(services, *svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterating rows: %v", ErrExecQuery, err)
	}

	return services, nil
}

// Update обновляет данные услуги
func (r *Repository) Update(ctx context.Context, svc *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableServices).
		Set("name", svc.Name).
		Set("description", svc.Description).
		Set("price", svc.Price).
		Set("duration_minutes", svc.DurationMinutes).
		Set("active", svc.Active).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"slug": svc.Slug}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - building update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - executing update query: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - reading rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: Update - slug %q", ErrServiceNotFound, svc.Slug)
	}

	return nil
}

// Deactivate помечает услугу неактивной, не удаляя запись
func (r *Repository) Deactivate(ctx context.Context, slug string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableServices).
		Set("active", false).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - building update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - executing update query: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - reading rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: Deactivate - slug %q", ErrServiceNotFound, slug)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	err := row.Scan(
		&svc.ID,
		&svc.Slug,
		&svc.Name,
		&svc.Description,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.Active,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}
