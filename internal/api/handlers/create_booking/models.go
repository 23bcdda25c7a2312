package create_booking

import (
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
	createBooking "github.com/daleelashes/booking-service/internal/usecase/create_booking"
	"github.com/daleelashes/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceSlug string `json:"serviceId"`  // slug услуги
	Date        string `json:"date"`       // "2026-06-15"
	StartTime   string `json:"startTime"`  // "10:00"
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ServiceSlug     string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Notes           string  `json:"notes,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	DepositAmount   float64 `json:"depositAmount"`
	PaymentProof    *string `json:"paymentProof,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ConflictResponse конверт ошибки 409 с занятым интервалом
type ConflictResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Conflict ConflictInterval `json:"conflict"`
}

// ConflictInterval занятый интервал, из-за которого отклонено бронирование
type ConflictInterval struct {
	StartTime string `json:"startTime"` // RFC3339 (UTC)
	EndTime   string `json:"endTime"`   // RFC3339 (UTC)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(proofPath *string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceSlug:      r.ServiceSlug,
		Date:             date,
		StartTime:        startTime,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Notes:            r.Notes,
		PaymentProofPath: proofPath,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, proofPath *string) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ServiceSlug:     resp.ServiceSlug,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		DurationMinutes: resp.DurationMinutes,
		FirstName:       resp.FirstName,
		LastName:        resp.LastName,
		Email:           resp.Email,
		Phone:           resp.Phone,
		Notes:           resp.Notes,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          resp.Status,
		DepositAmount:   resp.DepositAmount,
		PaymentProof:    proofPath,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

// NewConflictResponse формирует тело ответа 409 по занятому интервалу
func NewConflictResponse(message string, start, end time.Time) *ConflictResponse {
	return &ConflictResponse{
		Success: false,
		Message: message,
		Conflict: ConflictInterval{
			StartTime: start.UTC().Format(time.RFC3339),
			EndTime:   end.UTC().Format(time.RFC3339),
		},
	}
}
