package submit_booking_proof

import (
	"context"
	"mime/multipart"

	createBooking "github.com/daleelashes/booking-service/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// ProofSaver сохраняет файл подтверждения оплаты и возвращает публичный путь
type ProofSaver interface {
	Save(fileHeader *multipart.FileHeader) (string, error)
	Remove(publicPath string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
