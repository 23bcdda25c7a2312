package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
	serviceRepo "github.com/daleelashes/booking-service/internal/infra/storage/service"
	"github.com/daleelashes/booking-service/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	blockedRepo  BlockedRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	policy       domain.SchedulePolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedRepo BlockedRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	policy domain.SchedulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockedRepo:  blockedRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// два одновременных запроса на пересекающиеся интервалы не создадут
// двух бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s, email=%s",
		req.ServiceSlug, req.Date.Format(domain.DateFormat), req.StartTime, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу: длительность и цена берутся из каталога,
	// клиент их не передаёт
	svc, err := uc.serviceRepo.GetActiveBySlug(ctx, req.ServiceSlug)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service %s not found", req.ServiceSlug)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service %s: %v", req.ServiceSlug, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Интервал в минутах суток и проверка против расписания
	startMin := req.StartTime.Minutes()
	if err := validateInterval(uc.policy, startMin, svc.DurationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
		return nil, err
	}

	// 5. Инстанты начала и конца: конец всегда вычисляется сервером
	// как начало плюс длительность услуги
	dayStart, dayEnd := uc.policy.DayWindow(req.Date)
	start := uc.policy.SlotInstant(dayStart, startMin)
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	if err := validateNotInPast(start, now); err != nil {
		uc.logger.Warn("CreateBooking: slot %s is in the past", start.Format(time.RFC3339))
		return nil, err
	}

	status := domain.StatusPending
	if req.PaymentProofPath != nil {
		status = domain.StatusPaymentProofSubmitted
	}
	if req.InitialStatus != "" {
		status = req.InitialStatus
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Проверяем блокировки дня
		blocked, err := uc.blockedRepo.GetByDate(txCtx, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked dates: %v", err)
			return fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
		}

		if err := validateBlocked(blocked, startMin, svc.DurationMinutes); err != nil {
			uc.logger.Warn("CreateBooking: %s %s is blocked", req.Date.Format(domain.DateFormat), req.StartTime)
			return err
		}

		// 6.2. Ищем пересекающиеся бронирования с блокировкой строк (FOR UPDATE)
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			taken := overlapping[0]
			uc.logger.Warn("CreateBooking: slot [%s, %s) conflicts with booking id=%d",
				start.Format(time.RFC3339), end.Format(time.RFC3339), taken.ID)
			return &SlotTakenError{Start: taken.StartTime, End: taken.EndTime}
		}

		// 6.3. Создаем бронирование со снимком данных услуги
		booking := &domain.Booking{
			ServiceSlug:     svc.Slug,
			ServiceName:     svc.Name,
			DurationMinutes: svc.DurationMinutes,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Phone:           req.Phone,
			Notes:           req.Notes,
			StartTime:       start.UTC(),
			EndTime:         end.UTC(),
			Status:          status,
			PaymentProof:    req.PaymentProofPath,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.Status)

	endLocal, err := req.StartTime.AddMinutes(svc.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to format end time: %v", ErrInternal, err)
	}

	return uc.toResponse(result, svc.Price, req.Date, req.StartTime, endLocal), nil
}

func (uc *UseCase) toResponse(b *domain.Booking, price float64, date time.Time, start, end types.TimeString) *Response {
	return &Response{
		ID:              b.ID,
		ServiceSlug:     b.ServiceSlug,
		ServiceName:     b.ServiceName,
		ServicePrice:    price,
		DurationMinutes: b.DurationMinutes,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		Notes:           b.Notes,
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		Status:          string(b.Status),
		DepositAmount:   domain.DepositAmount,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
