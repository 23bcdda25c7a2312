package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/service/catalog"
)

const msgNotFound = "услуга не найдена"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/admin/services/{slug} — мягкая деактивация
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	if err := h.service.Deactivate(r.Context(), slug); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /admin/services/{slug} - Service not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/services/{slug} - Failed to deactivate service: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/services/{slug} - Service deactivated: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
