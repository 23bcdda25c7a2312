package blockeddates

import (
	"context"
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
)

// BlockedRepository интерфейс репозитория блокировок расписания
type BlockedRepository interface {
	Create(ctx context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error)
	ListAll(ctx context.Context) ([]domain.BlockedDate, error)
	GetByDate(ctx context.Context, from, to time.Time) ([]domain.BlockedDate, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
