package create_admin

import (
	"errors"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/service/admins"
	"github.com/daleelashes/booking-service/internal/service/admins/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAdmin       = "некорректные данные администратора"
	msgEmailExists        = "администратор с таким email уже существует"
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

// Handle POST /api/admin/admins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdminRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/admins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrEmailExists):
			h.logger.Warn("POST /admin/admins - Email already exists: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailExists)

		case errors.Is(err, admins.ErrInvalidInput):
			h.logger.Warn("POST /admin/admins - Invalid admin data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAdmin)

		default:
			h.logger.Error("POST /admin/admins - Failed to create admin: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/admins - Admin created: admin_id=%d, role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
