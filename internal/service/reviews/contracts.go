package reviews

import (
	"context"

	"github.com/daleelashes/booking-service/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	ListApproved(ctx context.Context, limit uint64) ([]domain.Review, error)
	ListAll(ctx context.Context, limit uint64) ([]domain.Review, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus) error
	IncrementHelpful(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
