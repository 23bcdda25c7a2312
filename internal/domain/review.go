package domain

import "time"

// ReviewStatus модерационный статус отзыва
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Review отзыв клиента; публично виден только после одобрения
type Review struct {
	ID      int64
	Name    string
	Service string // Название услуги свободным текстом, как ввёл клиент
	Rating  int    // 1..5
	Text    string
	Helpful int
	Status  ReviewStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// рамки допустимой оценки
const (
	MinRating = 1
	MaxRating = 5
)
