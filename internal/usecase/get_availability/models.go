package get_availability

import (
	"time"

	"github.com/daleelashes/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date        time.Time // Календарный день по времени салона (без времени)
	ServiceSlug string    // Slug услуги, определяет длительность слота
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date    time.Time          // Дата, на которую запрашивались слоты
	Service ServiceSummary     // Сводка по услуге
	Slots   []types.TimeString // Времена начала свободных слотов по возрастанию
}

// ServiceSummary краткая информация об услуге для ответа
type ServiceSummary struct {
	Slug            string
	Name            string
	Price           float64
	DurationMinutes int
}
