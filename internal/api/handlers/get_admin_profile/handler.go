package get_admin_profile

import (
	"errors"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/api/middleware"
	"github.com/daleelashes/booking-service/internal/service/admins"
)

const (
	msgMissingIdentity = "отсутствуют данные авторизации"
	msgNotFound        = "администратор не найден"
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

// Handle GET /api/admin/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/me - Missing admin identity in context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	result, err := h.service.GetByID(r.Context(), adminID)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrAdminNotFound):
			h.logger.Warn("GET /admin/me - Admin not found: admin_id=%d", adminID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/me - Failed to get profile: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/me - Profile retrieved: admin_id=%d", adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
