package delete_admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/api/middleware"
	"github.com/daleelashes/booking-service/internal/service/admins"
)

const (
	msgInvalidAdminID  = "некорректный ID администратора"
	msgMissingIdentity = "отсутствуют данные авторизации"
	msgNotFound        = "администратор не найден"
	msgCannotDelete    = "нельзя удалить собственную учетную запись"
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

// Handle DELETE /api/admin/admins/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/admins/{id} - Invalid admin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	requestorID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /admin/admins/{id} - Missing admin identity in context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	if err := h.service.Delete(r.Context(), adminID, requestorID); err != nil {
		switch {
		case errors.Is(err, admins.ErrCannotDeleteSelf):
			h.logger.Warn("DELETE /admin/admins/{id} - Attempt to delete own account: admin_id=%d", adminID)
			handlers.RespondConflict(w, msgCannotDelete)

		case errors.Is(err, admins.ErrAdminNotFound):
			h.logger.Warn("DELETE /admin/admins/{id} - Admin not found: admin_id=%d", adminID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/admins/{id} - Failed to delete admin: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/admins/{id} - Admin deleted: admin_id=%d, by=%d", adminID, requestorID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
