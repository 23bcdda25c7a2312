package mark_contact_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/service/contacts"
)

const (
	msgInvalidMessageID = "некорректный ID сообщения"
	msgNotFound         = "сообщение не найдено"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/admin/contacts/{id}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	messageID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/contacts/{id}/read - Invalid message ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	if err := h.service.MarkRead(r.Context(), messageID); err != nil {
		switch {
		case errors.Is(err, contacts.ErrMessageNotFound):
			h.logger.Warn("PATCH /admin/contacts/{id}/read - Message not found: message_id=%d", messageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/contacts/{id}/read - Failed to mark read: message_id=%d, error=%v",
				messageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/contacts/{id}/read - Message marked read: message_id=%d", messageID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
