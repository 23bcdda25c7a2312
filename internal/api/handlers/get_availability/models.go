package get_availability

import (
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
	getAvailability "github.com/daleelashes/booking-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date    string         `json:"date"` // "2026-06-15"
	Service ServiceSummary `json:"service"`
	Slots   []string       `json:"slots"` // ["10:00", "10:30", ...]
}

// ServiceSummary краткая информация об услуге
type ServiceSummary struct {
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // минуты
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(dateStr, serviceSlug string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		Date:        date,
		ServiceSlug: serviceSlug,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailabilityResponse{
		Date: resp.Date.Format(domain.DateFormat),
		Service: ServiceSummary{
			Slug:     resp.Service.Slug,
			Name:     resp.Service.Name,
			Price:    resp.Service.Price,
			Duration: resp.Service.DurationMinutes,
		},
		Slots: slots,
	}
}
