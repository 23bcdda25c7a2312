package contact

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/pkg/dbmetrics"
	"github.com/daleelashes/booking-service/pkg/psqlbuilder"
)

const tableContactMessages = "contact_messages"

var contactColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"subject",
	"message",
	"status",
	"created_at",
}

// Repository - репозиторий для работы с сообщениями обратной связи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый репозиторий сообщений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое сообщение в статусе new
func (r *Repository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableContactMessages).
		Columns("name", "email", "phone", "subject", "message", "status").
		Values(msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, domain.ContactNew).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - building insert query: %v", ErrBuildQuery, err)
	}

	created := *msg
	created.Status = domain.ContactNew
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - executing insert query: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// List возвращает сообщения, новые первыми
func (r *Repository) List(ctx context.Context, limit uint64) ([]domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(contactColumns...).
		From(tableContactMessages).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - building select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - executing select query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]domain.ContactMessage, 0)
	for rows.Next() {
		var msg domain.ContactMessage
		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Phone,
			&msg.Subject,
			&msg.Message,
			&msg.Status,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scanning row: %v", ErrScanRow, err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterating rows: %v", ErrExecQuery, err)
	}

	return messages, nil
}

// UpdateStatus изменяет статус обработки сообщения
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableContactMessages).
		Set("status", status).
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
		return fmt.Errorf("%w: UpdateStatus - id %d", ErrMessageNotFound, id)
	}

	return nil
}
