package mark_review_helpful

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/service/reviews"
)

const (
	msgInvalidReviewID = "некорректный ID отзыва"
	msgNotFound        = "отзыв не найден"
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

// Handle POST /api/reviews/{id}/helpful
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reviews/{id}/helpful - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	if err := h.service.MarkHelpful(r.Context(), reviewID); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("POST /reviews/{id}/helpful - Review not found: review_id=%d", reviewID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /reviews/{id}/helpful - Failed to mark helpful: review_id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews/{id}/helpful - Review marked helpful: review_id=%d", reviewID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
