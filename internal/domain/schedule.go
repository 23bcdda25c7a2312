package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/daleelashes/booking-service/pkg/types"
)

var (
	// ErrInvalidSchedule возвращается при противоречивой конфигурации расписания
	ErrInvalidSchedule = errors.New("domain: invalid schedule policy")
)

// SchedulePolicy рабочее расписание салона: минуты открытия и закрытия,
// шаг слотов и исключаемое обеденное окно.
// Значения приходят из конфига, в коде движка ничего не захардкожено
type SchedulePolicy struct {
	OpeningMinutes    int
	ClosingMinutes    int
	StepMinutes       int
	LunchStartMinutes int
	LunchEndMinutes   int

	// Таймзона салона: все календарные дни считаются в ней
	Location *time.Location
}

// NewSchedulePolicy собирает и валидирует расписание из сырых значений конфига
func NewSchedulePolicy(timezone string, opening, closing string, stepMinutes int, lunchStart, lunchEnd string) (SchedulePolicy, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return SchedulePolicy{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidSchedule, timezone)
	}

	open, err := types.NewTimeStringFromString(opening)
	if err != nil {
		return SchedulePolicy{}, fmt.Errorf("%w: opening: %v", ErrInvalidSchedule, err)
	}
	close, err := types.NewTimeStringFromString(closing)
	if err != nil {
		return SchedulePolicy{}, fmt.Errorf("%w: closing: %v", ErrInvalidSchedule, err)
	}
	lStart, err := types.NewTimeStringFromString(lunchStart)
	if err != nil {
		return SchedulePolicy{}, fmt.Errorf("%w: lunch_start: %v", ErrInvalidSchedule, err)
	}
	lEnd, err := types.NewTimeStringFromString(lunchEnd)
	if err != nil {
		return SchedulePolicy{}, fmt.Errorf("%w: lunch_end: %v", ErrInvalidSchedule, err)
	}

	p := SchedulePolicy{
		OpeningMinutes:    open.Minutes(),
		ClosingMinutes:    close.Minutes(),
		StepMinutes:       stepMinutes,
		LunchStartMinutes: lStart.Minutes(),
		LunchEndMinutes:   lEnd.Minutes(),
		Location:          loc,
	}

	if err := p.validate(); err != nil {
		return SchedulePolicy{}, err
	}

	return p, nil
}

func (p SchedulePolicy) validate() error {
	if p.StepMinutes <= 0 {
		return fmt.Errorf("%w: step must be positive", ErrInvalidSchedule)
	}
	if p.OpeningMinutes >= p.ClosingMinutes {
		return fmt.Errorf("%w: opening must be before closing", ErrInvalidSchedule)
	}
	if p.LunchStartMinutes > p.LunchEndMinutes {
		return fmt.Errorf("%w: lunch start must not be after lunch end", ErrInvalidSchedule)
	}
	return nil
}

// DayWindow возвращает границы календарного дня date по времени салона
// как пару инстантов [start, end) - полночь и полночь следующего дня
func (p SchedulePolicy) DayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, p.Location)
	return start, start.AddDate(0, 0, 1)
}

// SlotInstant возвращает инстант начала слота: minutes минут от полуночи
// дня dayStart
func (p SchedulePolicy) SlotInstant(dayStart time.Time, minutes int) time.Time {
	return dayStart.Add(time.Duration(minutes) * time.Minute)
}

// MinuteOfDay возвращает минуту суток инстанта t по времени салона
func (p SchedulePolicy) MinuteOfDay(t time.Time) int {
	local := t.In(p.Location)
	return local.Hour()*60 + local.Minute()
}

// OverlapsLunch проверяет, пересекает ли интервал [startMin, startMin+duration)
// обеденное окно. Полуоткрытая семантика: граничащие интервалы не пересекаются
func (p SchedulePolicy) OverlapsLunch(startMin, durationMin int) bool {
	return startMin < p.LunchEndMinutes && startMin+durationMin > p.LunchStartMinutes
}

// WithinBusinessHours проверяет, что интервал целиком внутри рабочих часов
func (p SchedulePolicy) WithinBusinessHours(startMin, durationMin int) bool {
	return startMin >= p.OpeningMinutes && startMin+durationMin <= p.ClosingMinutes
}
