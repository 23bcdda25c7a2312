package create_booking

import (
	"context"
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// FindOverlapping получает неотменённые бронирования, пересекающие [start, end)
	FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// BlockedRepository интерфейс репозитория блокировок расписания
type BlockedRepository interface {
	GetByDate(ctx context.Context, from, to time.Time) ([]domain.BlockedDate, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetActiveBySlug(ctx context.Context, slug string) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
