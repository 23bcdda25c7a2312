package contacts

import (
	"context"

	"github.com/daleelashes/booking-service/internal/domain"
)

// ContactRepository интерфейс репозитория сообщений обратной связи
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context, limit uint64) ([]domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
