package delete_service

import "context"

type CatalogService interface {
	Deactivate(ctx context.Context, slug string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
