package catalog

import (
	"context"

	"github.com/daleelashes/booking-service/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Service, error)
	GetActiveBySlug(ctx context.Context, slug string) (*domain.Service, error)
	List(ctx context.Context, includeInactive bool) ([]domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Deactivate(ctx context.Context, slug string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
