package blockeddates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
	blockedRepo "github.com/daleelashes/booking-service/internal/infra/storage/blocked"
	"github.com/daleelashes/booking-service/internal/service/blockeddates/models"
	"github.com/daleelashes/booking-service/pkg/types"
)

// Service сервис для работы с блокировками расписания
type Service struct {
	blockedRepo BlockedRepository
	policy      domain.SchedulePolicy
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedRepo BlockedRepository, policy domain.SchedulePolicy, logger Logger) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		policy:      policy,
		logger:      logger,
	}
}

// List возвращает все блокировки
func (s *Service) List(ctx context.Context) (*models.BlockedDateListResponse, error) {
	s.logger.Info("List: fetching blocked dates")

	blocked, err := s.blockedRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDateList(blocked), nil
}

// Create закрывает день целиком или промежуток дня
// adminID - идентификатор администратора, выполняющего операцию
func (s *Service) Create(ctx context.Context, adminID int64, req *models.CreateBlockedDateRequest) (*models.BlockedDateResponse, error) {
	s.logger.Info("Create: blocking %s (allDay=%v) by admin=%d", req.Date, req.AllDay, adminID)

	bd, err := s.toDomain(adminID, req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.blockedRepo.Create(ctx, bd)
	if err != nil {
		if errors.Is(err, blockedRepo.ErrDateAlreadyBlocked) {
			s.logger.Warn("Create: %s is already blocked", req.Date)
			return nil, ErrDateAlreadyBlocked
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blocked date id=%d created", created.ID)
	return models.FromDomainBlockedDate(created), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing blocked date id=%d", id)

	if err := s.blockedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("Delete: blocked date id=%d not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocked date id=%d removed", id)
	return nil
}

// toDomain валидирует запрос и собирает domain модель
func (s *Service) toDomain(adminID int64, req *models.CreateBlockedDateRequest) (*domain.BlockedDate, error) {
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, s.policy.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	bd := &domain.BlockedDate{
		Date:      date,
		Reason:    req.Reason,
		AllDay:    req.AllDay,
		CreatedBy: adminID,
	}

	if req.AllDay {
		if req.StartTime != "" || req.EndTime != "" {
			return nil, fmt.Errorf("%w: all-day block must not carry a time range", ErrInvalidInput)
		}
		return bd, nil
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	bd.StartTime = start
	bd.EndTime = end
	return bd, nil
}
