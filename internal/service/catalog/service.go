package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/daleelashes/booking-service/internal/domain"
	serviceRepo "github.com/daleelashes/booking-service/internal/infra/storage/service"
	"github.com/daleelashes/booking-service/internal/service/catalog/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Service сервис для работы с каталогом услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает список услуг
// Публичный вызов видит только активные, админский - все
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services, includeInactive=%v", includeInactive)

	services, err := s.serviceRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetBySlug возвращает активную услугу по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.ServiceResponse, error) {
	s.logger.Info("GetBySlug: fetching service %s", slug)

	svc, err := s.serviceRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetBySlug: service %s not found", slug)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetBySlug: repository error for %s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service %s", req.Slug)

	if err := validateServiceFields(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed for %s: %v", req.Slug, err)
		return nil, err
	}
	if !slugPattern.MatchString(req.Slug) {
		s.logger.Warn("Create: invalid slug %q", req.Slug)
		return nil, fmt.Errorf("%w: slug must be lowercase letters, digits and dashes", ErrInvalidInput)
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Slug:            req.Slug,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	})
	if err != nil {
		if errors.Is(err, serviceRepo.ErrSlugExists) {
			s.logger.Warn("Create: slug %s already exists", req.Slug)
			return nil, ErrSlugExists
		}
		s.logger.Error("Create: repository error for %s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service %s created with id=%d", created.Slug, created.ID)
	return models.FromDomainService(created), nil
}

// Update обновляет услугу по slug
func (s *Service) Update(ctx context.Context, slug string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service %s", slug)

	if err := validateServiceFields(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed for %s: %v", slug, err)
		return nil, err
	}

	err := s.serviceRepo.Update(ctx, &domain.Service{
		Slug:            slug,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active,
	})
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service %s not found", slug)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for %s: %v", slug, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	svc, err := s.serviceRepo.GetBySlug(ctx, slug)
	if err != nil {
		s.logger.Error("Update: failed to reload service %s: %v", slug, err)
		return nil, fmt.Errorf("%w: Update - reload: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// Deactivate мягко удаляет услугу: скрывает из каталога, сохраняя историю
func (s *Service) Deactivate(ctx context.Context, slug string) error {
	s.logger.Info("Deactivate: deactivating service %s", slug)

	if err := s.serviceRepo.Deactivate(ctx, slug); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Deactivate: service %s not found", slug)
			return ErrServiceNotFound
		}
		s.logger.Error("Deactivate: repository error for %s: %v", slug, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: service %s deactivated", slug)
	return nil
}

// validateServiceFields общая валидация полей услуги
func validateServiceFields(name string, price float64, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
