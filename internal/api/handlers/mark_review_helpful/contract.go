package mark_review_helpful

import "context"

type ReviewService interface {
	MarkHelpful(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
