package domain

import (
	"time"

	"github.com/daleelashes/booking-service/pkg/types"
)

// BlockedDate закрытие расписания администратором: день целиком
// или промежуток дня, в который записи не принимаются
type BlockedDate struct {
	ID     int64
	Date   time.Time // Календарный день (полночь по времени салона)
	Reason string
	AllDay bool

	// Частичная блокировка: заполняются только при AllDay = false
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedBy int64 // ID администратора
	CreatedAt time.Time
}

// BlocksInterval проверяет, перекрывает ли блокировка интервал
// [startMin, startMin+durationMin) в минутах от начала дня.
// Полнодневная блокировка перекрывает всё; частичная - по полуоткрытому
// пересечению интервалов
func (b *BlockedDate) BlocksInterval(startMin, durationMin int) bool {
	if b.AllDay {
		return true
	}
	endMin := startMin + durationMin
	return startMin < b.EndTime.Minutes() && endMin > b.StartTime.Minutes()
}
