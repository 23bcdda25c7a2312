package domain

import "time"

// ContactStatus статус обработки сообщения
type ContactStatus string

const (
	ContactNew       ContactStatus = "new"
	ContactRead      ContactStatus = "read"
	ContactResponded ContactStatus = "responded"
)

// ContactMessage сообщение из формы обратной связи
type ContactMessage struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Status  ContactStatus

	CreatedAt time.Time
}
