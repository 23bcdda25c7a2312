package get_availability

import (
	"context"
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDayWindow получает неотменённые бронирования с началом в окне [from, to)
	GetByDayWindow(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// BlockedRepository интерфейс репозитория блокировок расписания
type BlockedRepository interface {
	// GetByDate получает блокировки, попадающие в окно [from, to)
	GetByDate(ctx context.Context, from, to time.Time) ([]domain.BlockedDate, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetActiveBySlug(ctx context.Context, slug string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
