package create_booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotTaken возвращается, когда запрошенный интервал пересекается с существующим бронированием
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrDateBlocked возвращается, когда интервал попадает в закрытое администратором время
	ErrDateBlocked = errors.New("create_booking: date is blocked")

	// ErrOutsideBusinessHours возвращается, когда интервал не помещается в рабочие часы
	ErrOutsideBusinessHours = errors.New("create_booking: outside business hours")

	// ErrLunchOverlap возвращается, когда интервал пересекает обеденное окно
	ErrLunchOverlap = errors.New("create_booking: overlaps lunch break")

	// ErrDateInPast возвращается при попытке записаться на прошедшее время
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotTakenError ошибка конфликта с указанием занятого интервала
// Разворачивается в ErrSlotTaken, интервал нужен хендлеру для ответа 409
type SlotTakenError struct {
	Start time.Time
	End   time.Time
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("%v: conflicts with [%s, %s)",
		ErrSlotTaken, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}
