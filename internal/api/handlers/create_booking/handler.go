package create_booking

import (
	"errors"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	createBooking "github.com/daleelashes/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgDateBlocked        = "выбранная дата недоступна для записи"
	msgServiceNotFound    = "услуга не найдена"
	msgOutsideHours       = "время вне рабочих часов салона"
	msgLunchOverlap       = "время пересекается с обеденным перерывом"
	msgDateInPast         = "нельзя записаться на прошедшее время"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(nil)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		RespondUseCaseError(w, h.logger, "POST /bookings", &req, err)
		return
	}

	response := FromUseCaseResponse(result, nil)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, service=%s, date=%s, start=%s",
		result.ID, req.ServiceSlug, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// RespondUseCaseError транслирует ошибки use case в HTTP ответы.
// Используется также обработчиком загрузки подтверждения оплаты.
func RespondUseCaseError(w http.ResponseWriter, logger Logger, op string, req *CreateBookingRequest, err error) {
	var slotTaken *createBooking.SlotTakenError

	switch {
	case errors.As(err, &slotTaken):
		logger.Warn("%s - Slot taken: service=%s, date=%s, start=%s", op, req.ServiceSlug, req.Date, req.StartTime)
		handlers.RespondJSON(w, http.StatusConflict,
			NewConflictResponse(msgSlotTaken, slotTaken.Start, slotTaken.End))

	case errors.Is(err, createBooking.ErrDateBlocked):
		logger.Warn("%s - Date blocked: date=%s", op, req.Date)
		handlers.RespondConflict(w, msgDateBlocked)

	case errors.Is(err, createBooking.ErrServiceNotFound):
		logger.Warn("%s - Service not found: service=%s", op, req.ServiceSlug)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, createBooking.ErrOutsideBusinessHours):
		logger.Warn("%s - Outside business hours: date=%s, start=%s", op, req.Date, req.StartTime)
		handlers.RespondBadRequest(w, msgOutsideHours)

	case errors.Is(err, createBooking.ErrLunchOverlap):
		logger.Warn("%s - Lunch overlap: date=%s, start=%s", op, req.Date, req.StartTime)
		handlers.RespondBadRequest(w, msgLunchOverlap)

	case errors.Is(err, createBooking.ErrDateInPast):
		logger.Warn("%s - Date in past: date=%s, start=%s", op, req.Date, req.StartTime)
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, createBooking.ErrInvalidInput):
		logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		logger.Error("%s - Failed to create booking: service=%s, date=%s, error=%v",
			op, req.ServiceSlug, req.Date, err)
		handlers.RespondInternalError(w)
	}
}
