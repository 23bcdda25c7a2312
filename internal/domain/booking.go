package domain

import "time"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending               BookingStatus = "pending"
	StatusPaymentProofSubmitted BookingStatus = "payment_proof_submitted"
	StatusValidated             BookingStatus = "validated"
	StatusCompleted             BookingStatus = "completed"
	StatusCancelled             BookingStatus = "cancelled"
)

// Booking запись клиента на услугу
type Booking struct {
	ID int64

	// Снимок услуги на момент бронирования: услугу могут позже
	// деактивировать или поменять, история должна сохраниться
	ServiceSlug     string
	ServiceName     string
	DurationMinutes int

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string

	// Интервал хранится в UTC; инвариант EndTime = StartTime + duration
	StartTime time.Time
	EndTime   time.Time

	Status BookingStatus

	// Подтверждение оплаты аванса (путь к файлу) и полученная сумма
	PaymentProof          *string
	PaymentAmountReceived *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot проверяет, занимает ли бронирование свой интервал времени.
// Каноническое множество "занимающих" статусов: все, кроме cancelled
func (b *Booking) BlocksSlot() bool {
	return b.Status != StatusCancelled
}

// IsCancelled проверяет, что бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelledAt проверяет, может ли клиент ещё отменить бронирование
// в момент now (не позднее, чем за 24 часа до начала)
func (b *Booking) CanBeCancelledAt(now time.Time) bool {
	if b.Status == StatusCancelled {
		return false
	}
	return b.StartTime.Sub(now) >= CancellationNotice
}

// BookingsFilter фильтр для выборки бронирований администратором
type BookingsFilter struct {
	Status      *BookingStatus // Фильтр по статусу (опционально)
	ServiceSlug *string        // Фильтр по услуге (опционально)
	Date        *time.Time     // Конкретный день по времени салона (опционально)
	Page        int
	Limit       int
}

// ValidBookingStatus проверяет, что строка - допустимый статус бронирования
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusPaymentProofSubmitted, StatusValidated, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
