package change_admin_password

import (
	"context"

	"github.com/daleelashes/booking-service/internal/service/admins/models"
)

type AdminService interface {
	ChangePassword(ctx context.Context, id int64, req *models.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
