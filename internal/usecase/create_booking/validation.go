package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceSlug == "" {
		return fmt.Errorf("%w: service slug is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}

	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.InitialStatus != "" && !domain.ValidBookingStatus(string(req.InitialStatus)) {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.InitialStatus)
	}

	return nil
}

// validateInterval проверяет интервал против расписания салона
func validateInterval(policy domain.SchedulePolicy, startMin, durationMin int) error {
	if !policy.WithinBusinessHours(startMin, durationMin) {
		return ErrOutsideBusinessHours
	}

	if policy.OverlapsLunch(startMin, durationMin) {
		return ErrLunchOverlap
	}

	return nil
}

// validateBlocked проверяет, что интервал не попадает в закрытое время
func validateBlocked(blocked []domain.BlockedDate, startMin, durationMin int) error {
	for i := range blocked {
		if blocked[i].BlocksInterval(startMin, durationMin) {
			return ErrDateBlocked
		}
	}
	return nil
}

// validateNotInPast проверяет, что начало слота не в прошлом
func validateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return ErrDateInPast
	}
	return nil
}
