package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daleelashes/booking-service/internal/domain"
	reviewRepo "github.com/daleelashes/booking-service/internal/infra/storage/review"
	"github.com/daleelashes/booking-service/internal/service/reviews/models"
)

const (
	publicListLimit = 20
	adminListLimit  = 50
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo ReviewRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// ListApproved возвращает одобренные отзывы для публичной страницы
func (s *Service) ListApproved(ctx context.Context) (*models.ReviewListResponse, error) {
	s.logger.Info("ListApproved: fetching approved reviews")

	reviews, err := s.reviewRepo.ListApproved(ctx, publicListLimit)
	if err != nil {
		s.logger.Error("ListApproved: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListApproved - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews), nil
}

// ListAll возвращает отзывы во всех статусах для модерации
func (s *Service) ListAll(ctx context.Context) (*models.ReviewListResponse, error) {
	s.logger.Info("ListAll: fetching reviews for moderation")

	reviews, err := s.reviewRepo.ListAll(ctx, adminListLimit)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews), nil
}

// Create принимает отзыв клиента; до модерации он не виден публично
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: new review from %s, rating=%d", req.Name, req.Rating)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}

	created, err := s.reviewRepo.Create(ctx, &domain.Review{
		Name:    strings.TrimSpace(req.Name),
		Service: strings.TrimSpace(req.Service),
		Rating:  req.Rating,
		Text:    strings.TrimSpace(req.Text),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: review id=%d created in status %s", created.ID, created.Status)
	return models.FromDomainReview(created), nil
}

// Publish одобряет отзыв
func (s *Service) Publish(ctx context.Context, id int64) error {
	return s.moderate(ctx, "Publish", id, domain.ReviewApproved)
}

// Reject отклоняет отзыв
func (s *Service) Reject(ctx context.Context, id int64) error {
	return s.moderate(ctx, "Reject", id, domain.ReviewRejected)
}

// MarkHelpful увеличивает счётчик полезности одобренного отзыва
func (s *Service) MarkHelpful(ctx context.Context, id int64) error {
	s.logger.Info("MarkHelpful: review id=%d", id)

	if err := s.reviewRepo.IncrementHelpful(ctx, id); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("MarkHelpful: review id=%d not found", id)
			return ErrReviewNotFound
		}
		s.logger.Error("MarkHelpful: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkHelpful - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) moderate(ctx context.Context, method string, id int64, status domain.ReviewStatus) error {
	s.logger.Info("%s: review id=%d -> %s", method, id, status)

	if err := s.reviewRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("%s: review id=%d not found", method, id)
			return ErrReviewNotFound
		}
		s.logger.Error("%s: repository error for id=%d: %v", method, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	s.logger.Info("%s: review id=%d moderated", method, id)
	return nil
}
