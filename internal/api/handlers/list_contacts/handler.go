package list_contacts

import (
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
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

// Handle GET /api/admin/contacts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/contacts - Failed to list contact messages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/contacts - Contact messages listed: count=%d", len(result.Messages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
