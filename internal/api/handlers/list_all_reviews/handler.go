package list_all_reviews

import (
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/reviews — отзывы во всех статусах
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reviews - Failed to list reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reviews - Reviews listed: count=%d", len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
