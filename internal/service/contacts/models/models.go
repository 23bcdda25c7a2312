package models

import (
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
)

// Request модели

// CreateContactRequest запрос из формы обратной связи
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Response модели

// ContactResponse ответ с данными сообщения
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactListResponse ответ со списком сообщений
type ContactListResponse struct {
	Messages []ContactResponse `json:"messages"`
}

// Методы конвертации

// FromDomainContact конвертирует domain модель в DTO
func FromDomainContact(m *domain.ContactMessage) *ContactResponse {
	if m == nil {
		return nil
	}
	return &ContactResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainContactList конвертирует список domain моделей в DTO
func FromDomainContactList(messages []domain.ContactMessage) *ContactListResponse {
	items := make([]ContactResponse, 0, len(messages))
	for i := range messages {
		items = append(items, *FromDomainContact(&messages[i]))
	}
	return &ContactListResponse{Messages: items}
}
