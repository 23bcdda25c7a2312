package create_booking

import (
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceSlug string           // Slug услуги
	Date        time.Time        // Календарный день по времени салона (без времени)
	StartTime   types.TimeString // Время начала слота (например, "10:00")

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string

	// Путь к загруженному подтверждению оплаты (опционально)
	// Если указан, бронирование сразу создаётся в статусе payment_proof_submitted
	PaymentProofPath *string

	// Статус создаваемой записи (опционально)
	// Пустое значение означает pending, либо payment_proof_submitted
	// при приложенном подтверждении оплаты. Администратор при создании
	// замены отменённой записи передаёт validated
	InitialStatus domain.BookingStatus
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID int64

	ServiceSlug     string
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string

	Date      time.Time        // Календарный день
	StartTime types.TimeString // Локальное время начала
	EndTime   types.TimeString // Локальное время конца
	Status    string

	// Требуемый аванс за запись
	DepositAmount float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
