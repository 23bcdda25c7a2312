package create_blocked_date

import (
	"context"

	"github.com/daleelashes/booking-service/internal/service/blockeddates/models"
)

type BlockedDateService interface {
	Create(ctx context.Context, adminID int64, req *models.CreateBlockedDateRequest) (*models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
