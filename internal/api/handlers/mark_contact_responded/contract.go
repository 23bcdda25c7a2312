package mark_contact_responded

import "context"

type ContactService interface {
	MarkResponded(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
