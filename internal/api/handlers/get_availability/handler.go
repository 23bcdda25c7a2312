package get_availability

import (
	"errors"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	getAvailability "github.com/daleelashes/booking-service/internal/usecase/get_availability"
)

const (
	msgMissingDate      = "дата обязательна"
	msgMissingServiceID = "услуга обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability
// Query params: date (required, YYYY-MM-DD), serviceId (required, slug услуги)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceSlug := r.URL.Query().Get("serviceId")
	if serviceSlug == "" {
		h.logger.Warn("GET /availability - Missing service slug")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, serviceSlug)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service=%s", serviceSlug)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: date=%s, service=%s", dateStr, serviceSlug)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed to compute slots: date=%s, service=%s, error=%v",
				dateStr, serviceSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Slots computed: date=%s, service=%s, slots_count=%d",
		dateStr, serviceSlug, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
