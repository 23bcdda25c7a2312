package get_availability

import (
	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/pkg/types"
)

// interval занятый промежуток в минутах суток, полуоткрытый [start, end)
type interval struct {
	start int
	end   int
}

// overlaps проверяет реальное пересечение с интервалом [start, end)
// Строгие неравенства: граничащие интервалы не пересекаются
func (iv interval) overlaps(start, end int) bool {
	return start < iv.end && end > iv.start
}

// hasAllDayBlock проверяет, закрыт ли день целиком
func hasAllDayBlock(blocked []domain.BlockedDate) bool {
	for _, bd := range blocked {
		if bd.AllDay {
			return true
		}
	}
	return false
}

// collectOccupiedIntervals собирает занятые промежутки дня из бронирований
// и частичных блокировок. Времена бронирований переводятся в минуты суток
// по таймзоне салона
func collectOccupiedIntervals(
	policy domain.SchedulePolicy,
	bookings []*domain.Booking,
	blocked []domain.BlockedDate,
) []interval {
	occupied := make([]interval, 0, len(bookings)+len(blocked))

	for _, b := range bookings {
		if !b.BlocksSlot() {
			continue
		}
		startMin := policy.MinuteOfDay(b.StartTime)
		occupied = append(occupied, interval{
			start: startMin,
			end:   startMin + b.DurationMinutes,
		})
	}

	for _, bd := range blocked {
		if bd.AllDay || bd.StartTime.IsZero() || bd.EndTime.IsZero() {
			continue
		}
		occupied = append(occupied, interval{
			start: bd.StartTime.Minutes(),
			end:   bd.EndTime.Minutes(),
		})
	}

	return occupied
}

// generateAvailableSlots генерирует времена начала свободных слотов
// Кандидаты идут от открытия с шагом policy.StepMinutes; слот годится, если
// услуга целиком помещается до закрытия и не пересекает ни обед, ни один
// занятый промежуток
func generateAvailableSlots(
	policy domain.SchedulePolicy,
	durationMinutes int,
	occupied []interval,
) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	for startMin := policy.OpeningMinutes; startMin+durationMinutes <= policy.ClosingMinutes; startMin += policy.StepMinutes {
		if policy.OverlapsLunch(startMin, durationMinutes) {
			continue
		}

		endMin := startMin + durationMinutes
		free := true
		for _, iv := range occupied {
			if iv.overlaps(startMin, endMin) {
				free = false
				break
			}
		}
		if !free {
			continue
		}

		slot, err := types.FromMinutes(startMin)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}
