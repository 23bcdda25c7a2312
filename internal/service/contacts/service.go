package contacts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/daleelashes/booking-service/internal/domain"
	contactRepo "github.com/daleelashes/booking-service/internal/infra/storage/contact"
	"github.com/daleelashes/booking-service/internal/service/contacts/models"
)

const listLimit = 100

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service сервис для работы с сообщениями обратной связи
type Service struct {
	contactRepo ContactRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сообщений
func NewService(contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Create принимает сообщение из формы обратной связи
func (s *Service) Create(ctx context.Context, req *models.CreateContactRequest) (*models.ContactResponse, error) {
	s.logger.Info("Create: contact message from %s", req.Email)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	created, err := s.contactRepo.Create(ctx, &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: contact message id=%d created", created.ID)
	return models.FromDomainContact(created), nil
}

// List возвращает сообщения для панели администратора
func (s *Service) List(ctx context.Context) (*models.ContactListResponse, error) {
	s.logger.Info("List: fetching contact messages")

	messages, err := s.contactRepo.List(ctx, listLimit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainContactList(messages), nil
}

// MarkRead помечает сообщение прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.updateStatus(ctx, "MarkRead", id, domain.ContactRead)
}

// MarkResponded помечает, что на сообщение ответили
func (s *Service) MarkResponded(ctx context.Context, id int64) error {
	return s.updateStatus(ctx, "MarkResponded", id, domain.ContactResponded)
}

func (s *Service) updateStatus(ctx context.Context, method string, id int64, status domain.ContactStatus) error {
	s.logger.Info("%s: message id=%d -> %s", method, id, status)

	if err := s.contactRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, contactRepo.ErrMessageNotFound) {
			s.logger.Warn("%s: message id=%d not found", method, id)
			return ErrMessageNotFound
		}
		s.logger.Error("%s: repository error for id=%d: %v", method, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	return nil
}
