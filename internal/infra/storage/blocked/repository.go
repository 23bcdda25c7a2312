package blocked

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/pkg/dbmetrics"
	"github.com/daleelashes/booking-service/pkg/psqlbuilder"
)

const (
	tableBlockedDates = "blocked_dates"

	pqUniqueViolation = "23505"
)

var blockedColumns = []string{
	"id",
	"date",
	"reason",
	"all_day",
	"start_time",
	"end_time",
	"created_by",
	"created_at",
}

// Repository - репозиторий для работы с блокировками расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый репозиторий блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
// Для повторной блокировки дня целиком уникальный индекс вернёт ошибку
func (r *Repository) Create(ctx context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBlockedDates).
		Columns("date", "reason", "all_day", "start_time", "end_time", "created_by").
		Values(bd.Date, bd.Reason, bd.AllDay, bd.StartTime, bd.EndTime, bd.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - building insert query: %v", ErrBuildQuery, err)
	}

	created := *bd
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, fmt.Errorf("%w: Create - date %s", ErrDateAlreadyBlocked, bd.Date.Format(domain.DateFormat))
		}
		return nil, fmt.Errorf("%w: Create - executing insert query: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByDate возвращает блокировки, попадающие в окно [from, to)
func (r *Repository) GetByDate(ctx context.Context, from, to time.Time) ([]domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedColumns...).
		From(tableBlockedDates).
		Where(sq.GtOrEq{"date": from}).
		Where(sq.Lt{"date": to}).
		OrderBy("date ASC, start_time ASC NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - building select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - executing select query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlockedDates(rows)
}

// ListAll возвращает все блокировки, отсортированные по дате
func (r *Repository) ListAll(ctx context.Context) ([]domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedColumns...).
		From(tableBlockedDates).
		OrderBy("date ASC, start_time ASC NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - building select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - executing select query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlockedDates(rows)
}

// Delete удаляет блокировку по идентификатору
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBlockedDates).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - building delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - executing delete query: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - reading rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: Delete - id %d", ErrBlockedDateNotFound, id)
	}

	return nil
}

func scanBlockedDates(rows *sql.Rows) ([]domain.BlockedDate, error) {
	blocked := make([]domain.BlockedDate, 0)
	for rows.Next() {
		var bd domain.BlockedDate
		err := rows.Scan(
			&bd.ID,
			&bd.Date,
			&bd.Reason,
			&bd.AllDay,
			&bd.StartTime,
			&bd.EndTime,
			&bd.CreatedBy,
			&bd.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", ErrScanRow, err)
		}
		blocked = append(blocked, bd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating rows: %v", ErrExecQuery, err)
	}
	return blocked, nil
}
