package get_admin_profile

import (
	"context"

	"github.com/daleelashes/booking-service/internal/service/admins/models"
)

type AdminService interface {
	GetByID(ctx context.Context, id int64) (*models.AdminResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
