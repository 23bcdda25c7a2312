package models

import (
	"errors"
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/pkg/ptr"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status      *string    `json:"status,omitempty"`      // Фильтр по статусу (опционально)
	ServiceSlug *string    `json:"serviceSlug,omitempty"` // Фильтр по услуге (опционально)
	Date        *time.Time `json:"date,omitempty"`        // Конкретный день (опционально)
	Page        int        `json:"page"`
	Limit       int        `json:"limit"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ServiceSlug: r.ServiceSlug,
		Date:        r.Date,
		Page:        r.Page,
		Limit:       r.Limit,
	}

	if filter.Page <= 0 {
		filter.Page = domain.DefaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultLimit
	}
	if filter.Limit > domain.MaxLimit {
		filter.Limit = domain.MaxLimit
	}

	if r.Status != nil {
		if !domain.ValidBookingStatus(*r.Status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = ptr.Ptr(domain.BookingStatus(*r.Status))
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`

	// Подтверждённая сумма аванса, имеет смысл при переводе в validated
	PaymentAmountReceived *float64 `json:"paymentAmountReceived,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID int64 `json:"id"`

	ServiceSlug     string `json:"serviceSlug"`
	ServiceName     string `json:"serviceName"`
	DurationMinutes int    `json:"durationMinutes"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes,omitempty"`

	Date      string `json:"date"`      // "2026-06-15" по времени салона
	StartTime string `json:"startTime"` // "10:00" по времени салона
	EndTime   string `json:"endTime"`   // "11:00" по времени салона
	Status    string `json:"status"`

	PaymentProof          *string  `json:"paymentProof,omitempty"`
	PaymentAmountReceived *float64 `json:"paymentAmountReceived,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований и пагинацией
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Времена из UTC переводятся в таймзону салона
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	if b == nil {
		return nil
	}

	start := b.StartTime.In(loc)
	end := b.EndTime.In(loc)

	return &BookingResponse{
		ID:                    b.ID,
		ServiceSlug:           b.ServiceSlug,
		ServiceName:           b.ServiceName,
		DurationMinutes:       b.DurationMinutes,
		FirstName:             b.FirstName,
		LastName:              b.LastName,
		Email:                 b.Email,
		Phone:                 b.Phone,
		Notes:                 b.Notes,
		Date:                  start.Format(domain.DateFormat),
		StartTime:             start.Format(domain.TimeFormat),
		EndTime:               end.Format(domain.TimeFormat),
		Status:                string(b.Status),
		PaymentProof:          b.PaymentProof,
		PaymentAmountReceived: b.PaymentAmountReceived,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, total int64, page, limit int, loc *time.Location) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b, loc))
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
}
