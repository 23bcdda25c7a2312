package admin_login

import (
	"errors"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/service/admins"
	"github.com/daleelashes/booking-service/internal/service/admins/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
	msgAccountDisabled    = "учетная запись отключена"
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

// Handle POST /api/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, admins.ErrAccountDisabled):
			h.logger.Warn("POST /admin/login - Disabled account: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgAccountDisabled)

		case errors.Is(err, admins.ErrInvalidInput):
			h.logger.Warn("POST /admin/login - Invalid input: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/login - Login failed: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: admin_id=%d", result.Admin.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
