package delete_admin

import "context"

type AdminService interface {
	Delete(ctx context.Context, id, requestorID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
