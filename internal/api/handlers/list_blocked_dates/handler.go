package list_blocked_dates

import (
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
)

type Handler struct {
	service BlockedDateService
	logger  Logger
}

func NewHandler(service BlockedDateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/availability/blocked
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/availability/blocked - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/availability/blocked - Blocked dates listed: count=%d", len(result.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
