package create_contact

import (
	"errors"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/service/contacts"
	"github.com/daleelashes/booking-service/internal/service/contacts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidContact     = "некорректные данные сообщения"
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

// Handle POST /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid contact data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidContact)

		default:
			h.logger.Error("POST /contact - Failed to create contact message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Contact message received: message_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
