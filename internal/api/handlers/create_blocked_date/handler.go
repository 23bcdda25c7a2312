package create_blocked_date

import (
	"errors"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/api/middleware"
	"github.com/daleelashes/booking-service/internal/service/blockeddates"
	"github.com/daleelashes/booking-service/internal/service/blockeddates/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствуют данные авторизации"
	msgInvalidBlock       = "некорректные данные блокировки"
	msgAlreadyBlocked     = "эта дата уже заблокирована"
)

type Handler struct {
	service BlockedDateService
	logger  Logger
}

func NewHandler(service BlockedDateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/availability/blocked
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/availability/blocked - Missing admin identity in context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req models.CreateBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability/blocked - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), adminID, &req)
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrDateAlreadyBlocked):
			h.logger.Warn("POST /admin/availability/blocked - Date already blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, blockeddates.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability/blocked - Invalid block data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		default:
			h.logger.Error("POST /admin/availability/blocked - Failed to block date: date=%s, error=%v",
				req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/availability/blocked - Date blocked: block_id=%d, date=%s, all_day=%t",
		result.ID, req.Date, req.AllDay)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
