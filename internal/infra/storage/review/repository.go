package review

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/pkg/dbmetrics"
	"github.com/daleelashes/booking-service/pkg/psqlbuilder"
)

const tableReviews = "reviews"

var reviewColumns = []string{
	"id",
	"name",
	"service",
	"rating",
	"text",
	"helpful",
	"status",
	"created_at",
	"updated_at",
}

// Repository - репозиторий для работы с отзывами клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый репозиторий отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв в статусе pending
func (r *Repository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableReviews).
		Columns("name", "service", "rating", "text", "helpful", "status").
		Values(rv.Name, rv.Service, rv.Rating, rv.Text, 0, domain.ReviewPending).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - building insert query: %v", ErrBuildQuery, err)
	}

	created := *rv
	created.Helpful = 0
	created.Status = domain.ReviewPending
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - executing insert query: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// ListApproved возвращает одобренные отзывы, новые первыми
func (r *Repository) ListApproved(ctx context.Context, limit uint64) ([]domain.Review, error) {
	return r.list(ctx, "ListApproved", sq.Eq{"status": domain.ReviewApproved}, limit)
}

// ListAll возвращает отзывы во всех статусах для модерации
func (r *Repository) ListAll(ctx context.Context, limit uint64) ([]domain.Review, error) {
	return r.list(ctx, "ListAll", nil, limit)
}

// UpdateStatus изменяет модерационный статус отзыва
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableReviews).
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - building update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - executing update query: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - reading rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: UpdateStatus - id %d", ErrReviewNotFound, id)
	}

	return nil
}

// IncrementHelpful увеличивает счётчик полезности отзыва
func (r *Repository) IncrementHelpful(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableReviews).
		Set("helpful", sq.Expr("helpful + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": domain.ReviewApproved}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementHelpful - building update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementHelpful - executing update query: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementHelpful - reading rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: IncrementHelpful - id %d", ErrReviewNotFound, id)
	}

	return nil
}

func (r *Repository) list(ctx context.Context, method string, where interface{}, limit uint64) ([]domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reviewColumns...).
		From(tableReviews).
		OrderBy("created_at DESC").
		Limit(limit)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - building select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - executing select query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		err := rows.Scan(
			&rv.ID,
			&rv.Name,
			&rv.Service,
			&rv.Rating,
			&rv.Text,
			&rv.Helpful,
			&rv.Status,
			&rv.CreatedAt,
			&rv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scanning row: %v", ErrScanRow, method, err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterating rows: %v", ErrExecQuery, method, err)
	}

	return reviews, nil
}
