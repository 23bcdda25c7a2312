package list_admins

import (
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/admins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/admins - Failed to list admins: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/admins - Admins listed: count=%d", len(result.Admins))
	handlers.RespondJSON(w, http.StatusOK, result)
}
