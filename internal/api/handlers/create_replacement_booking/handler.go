package create_replacement_booking

import (
	"fmt"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	createBookingHandler "github.com/daleelashes/booking-service/internal/api/handlers/create_booking"
	"github.com/daleelashes/booking-service/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgOriginalIDRequired = "не указана исходная запись"
)

// CreateReplacementRequest запрос администратора на запись-замену.
// Используется, когда клиенту после отмены предлагают новый слот
type CreateReplacementRequest struct {
	OriginalBookingID int64  `json:"originalBookingId"`
	ServiceSlug       string `json:"serviceId"`
	Date              string `json:"date"`      // "2026-06-15"
	StartTime         string `json:"startTime"` // "10:00"
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Notes             string `json:"notes,omitempty"`
}

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

// Handle POST /api/admin/bookings
// Запись проходит ту же проверку конфликтов, что и клиентская,
// но создаётся сразу в статусе validated: аванс с клиента, которому
// отменили запись, повторно не требуется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReplacementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.OriginalBookingID <= 0 {
		h.logger.Warn("POST /admin/bookings - Missing original booking id")
		handlers.RespondBadRequest(w, msgOriginalIDRequired)
		return
	}

	bookingReq := createBookingHandler.CreateBookingRequest{
		ServiceSlug: req.ServiceSlug,
		Date:        req.Date,
		StartTime:   req.StartTime,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Notes:       annotateNotes(req.Notes, req.OriginalBookingID),
	}

	useCaseReq, err := bookingReq.ToUseCaseRequest(nil)
	if err != nil {
		h.logger.Warn("POST /admin/bookings - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}
	useCaseReq.InitialStatus = domain.StatusValidated

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		createBookingHandler.RespondUseCaseError(w, h.logger, "POST /admin/bookings", &bookingReq, err)
		return
	}

	response := createBookingHandler.FromUseCaseResponse(result, nil)

	h.logger.Info("POST /admin/bookings - Replacement booking created: booking_id=%d, original_id=%d, service=%s, date=%s, start=%s",
		result.ID, req.OriginalBookingID, req.ServiceSlug, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// annotateNotes дописывает в заметки ссылку на отменённую запись
func annotateNotes(notes string, originalID int64) string {
	annotation := fmt.Sprintf("Замена отменённой записи #%d", originalID)
	if notes == "" {
		return annotation
	}
	return notes + "\n" + annotation
}
