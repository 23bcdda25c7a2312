package change_admin_password

import (
	"errors"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/api/middleware"
	"github.com/daleelashes/booking-service/internal/service/admins"
	"github.com/daleelashes/booking-service/internal/service/admins/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствуют данные авторизации"
	msgWrongPassword      = "неверный текущий пароль"
	msgWeakPassword       = "новый пароль слишком короткий"
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

// Handle PATCH /api/admin/change-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/change-password - Missing admin identity in context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req models.ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/change-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ChangePassword(r.Context(), adminID, &req); err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidCredentials):
			h.logger.Warn("PATCH /admin/change-password - Wrong current password: admin_id=%d", adminID)
			handlers.RespondBadRequest(w, msgWrongPassword)

		case errors.Is(err, admins.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/change-password - Weak new password: admin_id=%d", adminID)
			handlers.RespondBadRequest(w, msgWeakPassword)

		default:
			h.logger.Error("PATCH /admin/change-password - Failed to change password: admin_id=%d, error=%v",
				adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/change-password - Password changed: admin_id=%d", adminID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
