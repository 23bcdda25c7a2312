package list_admins

import (
	"context"

	"github.com/daleelashes/booking-service/internal/service/admins/models"
)

type AdminService interface {
	List(ctx context.Context) (*models.AdminListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
