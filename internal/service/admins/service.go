package admins

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/daleelashes/booking-service/internal/domain"
	adminRepo "github.com/daleelashes/booking-service/internal/infra/storage/admin"
	"github.com/daleelashes/booking-service/internal/service/admins/models"
	"github.com/daleelashes/booking-service/pkg/password"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service сервис для работы с учётными записями администраторов
type Service struct {
	adminRepo AdminRepository
	tokens    TokenService
	logger    Logger
}

// NewService создает новый экземпляр сервиса администраторов
func NewService(adminRepo AdminRepository, tokens TokenService, logger Logger) *Service {
	return &Service{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login проверяет учётные данные и выпускает JWT токен
// Успешный вход фиксирует время последнего входа
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: attempt for %s", email)

	adm, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !adm.Active {
		s.logger.Warn("Login: account %s is disabled", email)
		return nil, ErrAccountDisabled
	}

	if err := password.Compare(adm.PasswordHash, req.Password); err != nil {
		s.logger.Warn("Login: wrong password for %s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(adm.ID, adm.Email, string(adm.Role))
	if err != nil {
		s.logger.Error("Login: failed to generate token for %s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - token generation: %v", ErrInternal, err)
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, adm.ID); err != nil {
		// Не критично для входа, но в логах должно остаться
		s.logger.Error("Login: failed to update last_login for id=%d: %v", adm.ID, err)
	}

	s.logger.Info("Login: admin id=%d logged in", adm.ID)
	return &models.LoginResponse{
		Token: token,
		Admin: *models.FromDomainAdmin(adm),
	}, nil
}

// GetByID возвращает администратора по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AdminResponse, error) {
	adm, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			return nil, ErrAdminNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAdmin(adm), nil
}

// ChangePassword меняет пароль после проверки текущего
func (s *Service) ChangePassword(ctx context.Context, id int64, req *models.ChangePasswordRequest) error {
	s.logger.Info("ChangePassword: admin id=%d", id)

	if len(req.NewPassword) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters",
			ErrInvalidInput, domain.MinPasswordLength)
	}

	adm, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			return ErrAdminNotFound
		}
		s.logger.Error("ChangePassword: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: ChangePassword - repository error: %v", ErrInternal, err)
	}

	if err := password.Compare(adm.PasswordHash, req.CurrentPassword); err != nil {
		s.logger.Warn("ChangePassword: wrong current password for id=%d", id)
		return ErrInvalidCredentials
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		s.logger.Error("ChangePassword: failed to hash password for id=%d: %v", id, err)
		return fmt.Errorf("%w: ChangePassword - hashing: %v", ErrInternal, err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, id, hash); err != nil {
		s.logger.Error("ChangePassword: failed to store password for id=%d: %v", id, err)
		return fmt.Errorf("%w: ChangePassword - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: password changed for admin id=%d", id)
	return nil
}

// Create создает новую учётную запись администратора
func (s *Service) Create(ctx context.Context, req *models.CreateAdminRequest) (*models.AdminResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Create: new admin %s, role=%s", email, req.Role)

	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			ErrInvalidInput, domain.MinPasswordLength)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.ValidAdminRole(req.Role) {
		return nil, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, req.Role)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		s.logger.Error("Create: failed to hash password for %s: %v", email, err)
		return nil, fmt.Errorf("%w: Create - hashing: %v", ErrInternal, err)
	}

	created, err := s.adminRepo.Create(ctx, &domain.Admin{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Role:         domain.AdminRole(req.Role),
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrEmailExists) {
			s.logger.Warn("Create: email %s already exists", email)
			return nil, ErrEmailExists
		}
		s.logger.Error("Create: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: admin id=%d created", created.ID)
	return models.FromDomainAdmin(created), nil
}

// List возвращает все учётные записи
func (s *Service) List(ctx context.Context) (*models.AdminListResponse, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAdminList(admins), nil
}

// Update обновляет имя, роль и активность учётной записи
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAdminRequest) (*models.AdminResponse, error) {
	s.logger.Info("Update: admin id=%d", id)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.ValidAdminRole(req.Role) {
		return nil, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, req.Role)
	}

	err := s.adminRepo.Update(ctx, &domain.Admin{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Role:   domain.AdminRole(req.Role),
		Active: req.Active,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Update: admin id=%d not found", id)
			return nil, ErrAdminNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет учётную запись
// Собственную учётную запись удалить нельзя
func (s *Service) Delete(ctx context.Context, id, requestorID int64) error {
	s.logger.Info("Delete: admin id=%d by admin id=%d", id, requestorID)

	if id == requestorID {
		s.logger.Warn("Delete: admin id=%d attempted to delete own account", id)
		return ErrCannotDeleteSelf
	}

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Delete: admin id=%d not found", id)
			return ErrAdminNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: admin id=%d deleted", id)
	return nil
}
