package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/daleelashes/booking-service/internal/domain"
	serviceRepo "github.com/daleelashes/booking-service/internal/infra/storage/service"
	"github.com/daleelashes/booking-service/pkg/types"
)

// UseCase use case для получения доступных слотов на день
type UseCase struct {
	bookingRepo BookingRepository
	blockedRepo BlockedRepository
	serviceRepo ServiceRepository
	policy      domain.SchedulePolicy
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedRepo BlockedRepository,
	serviceRepo ServiceRepository,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		blockedRepo: blockedRepo,
		serviceRepo: serviceRepo,
		policy:      policy,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%s, date=%s",
		req.ServiceSlug, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу: её длительность определяет размер слота
	svc, err := uc.serviceRepo.GetActiveBySlug(ctx, req.ServiceSlug)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service %s not found", req.ServiceSlug)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service %s: %v", req.ServiceSlug, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	summary := ServiceSummary{
		Slug:            svc.Slug,
		Name:            svc.Name,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
	}

	// 3. Границы календарного дня по времени салона
	dayStart, dayEnd := uc.policy.DayWindow(req.Date)

	// 4. Получаем блокировки на этот день
	blocked, err := uc.blockedRepo.GetByDate(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	// 5. День закрыт целиком - слотов нет
	if hasAllDayBlock(blocked) {
		uc.logger.Info("GetAvailability: %s is blocked all day", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:    req.Date,
			Service: summary,
			Slots:   []types.TimeString{},
		}, nil
	}

	// 6. Получаем неотменённые бронирования дня
	bookings, err := uc.bookingRepo.GetByDayWindow(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Собираем занятые промежутки и генерируем свободные слоты
	occupied := collectOccupiedIntervals(uc.policy, bookings, blocked)

	slots, err := generateAvailableSlots(uc.policy, svc.DurationMinutes, occupied)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: %d slots for service=%s, date=%s",
		len(slots), req.ServiceSlug, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:    req.Date,
		Service: summary,
		Slots:   slots,
	}, nil
}
