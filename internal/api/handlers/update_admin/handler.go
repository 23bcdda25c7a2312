package update_admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/service/admins"
	"github.com/daleelashes/booking-service/internal/service/admins/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAdminID     = "некорректный ID администратора"
	msgInvalidAdmin       = "некорректные данные администратора"
	msgNotFound           = "администратор не найден"
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

// Handle PATCH /api/admin/admins/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/admins/{id} - Invalid admin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	var req models.UpdateAdminRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/admins/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), adminID, &req)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrAdminNotFound):
			h.logger.Warn("PATCH /admin/admins/{id} - Admin not found: admin_id=%d", adminID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, admins.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/admins/{id} - Invalid admin data: admin_id=%d, error=%v", adminID, err)
			handlers.RespondBadRequest(w, msgInvalidAdmin)

		default:
			h.logger.Error("PATCH /admin/admins/{id} - Failed to update admin: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/admins/{id} - Admin updated: admin_id=%d", adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
