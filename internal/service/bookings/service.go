package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/daleelashes/booking-service/internal/domain"
	bookingRepo "github.com/daleelashes/booking-service/internal/infra/storage/booking"
	"github.com/daleelashes/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	policy       domain.SchedulePolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	policy domain.SchedulePolicy,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.policy.Location), nil
}

// List получает список бронирований с фильтрацией и пагинацией
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, page=%d, limit=%d", req.Page, req.Limit)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter, s.policy.DayWindow)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d bookings", len(bookings), total)
	return models.FromDomainBookingList(bookings, total, filter.Page, filter.Limit, s.policy.Location), nil
}

// UpdateStatus изменяет статус бронирования
// При переводе в validated опционально фиксирует подтверждённую сумму аванса
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d -> %s", id, req.Status)

	if !domain.ValidBookingStatus(req.Status) {
		s.logger.Warn("UpdateStatus: invalid status %q for booking id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatus(req.Status)); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if req.PaymentAmountReceived != nil {
		if err := s.bookingRepo.UpdatePaymentAmount(ctx, id, *req.PaymentAmountReceived); err != nil {
			s.logger.Error("UpdateStatus: failed to record payment amount for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - record payment amount: %v", ErrInternal, err)
		}
	}

	return s.GetByID(ctx, id)
}

// Cancel отменяет бронирование по запросу клиента
// Отмена возможна не позднее, чем за сутки до начала
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", id)
		return nil, ErrAlreadyCancelled
	}

	now := s.timeProvider.Now()
	if !booking.CanBeCancelledAt(now) {
		s.logger.Warn("Cancel: booking id=%d starts at %s, too late to cancel",
			id, booking.StartTime.Format(domain.DateFormat))
		return nil, ErrTooLateToCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return s.GetByID(ctx, id)
}

// Delete физически удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}
