package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/internal/service/bookings"
	"github.com/daleelashes/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPaging = "некорректные параметры пагинации"
	msgInvalidFilter = "некорректные параметры фильтра"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/bookings
// Query params: status, serviceSlug, date (YYYY-MM-DD), page, limit — все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if slug := query.Get("serviceSlug"); slug != "" {
		req.ServiceSlug = &slug
	}
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			h.logger.Warn("GET /admin/bookings - Invalid page: %q", pageStr)
			handlers.RespondBadRequest(w, msgInvalidPaging)
			return
		}
		req.Page = page
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			h.logger.Warn("GET /admin/bookings - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidPaging)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings listed: count=%d, total=%d, page=%d",
		len(result.Bookings), result.Total, result.Page)
	handlers.RespondJSON(w, http.StatusOK, result)
}
