package models

import (
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
)

// Request модели

// CreateBlockedDateRequest запрос на закрытие дня или промежутка дня
type CreateBlockedDateRequest struct {
	Date   string `json:"date"` // "2026-06-15"
	Reason string `json:"reason"`
	AllDay bool   `json:"allDay"`

	// Для частичной блокировки (allDay = false)
	StartTime string `json:"startTime,omitempty"` // "14:00"
	EndTime   string `json:"endTime,omitempty"`   // "16:00"
}

// Response модели

// BlockedDateResponse ответ с данными блокировки
type BlockedDateResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	AllDay    bool      `json:"allDay"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedDateListResponse ответ со списком блокировок
type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// Методы конвертации

// FromDomainBlockedDate конвертирует domain модель в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Reason:    b.Reason,
		AllDay:    b.AllDay,
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedDateList конвертирует список domain моделей в DTO
func FromDomainBlockedDateList(blocked []domain.BlockedDate) *BlockedDateListResponse {
	items := make([]BlockedDateResponse, 0, len(blocked))
	for i := range blocked {
		items = append(items, *FromDomainBlockedDate(&blocked[i]))
	}
	return &BlockedDateListResponse{BlockedDates: items}
}
