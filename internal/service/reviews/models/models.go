package models

import (
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на публикацию отзыва
type CreateReviewRequest struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Service   string    `json:"service,omitempty"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Helpful   int       `json:"helpful"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}
	return &ReviewResponse{
		ID:        r.ID,
		Name:      r.Name,
		Service:   r.Service,
		Rating:    r.Rating,
		Text:      r.Text,
		Helpful:   r.Helpful,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []domain.Review) *ReviewListResponse {
	items := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, *FromDomainReview(&reviews[i]))
	}
	return &ReviewListResponse{Reviews: items}
}
