package domain

import "time"

// Service услуга из каталога салона
type Service struct {
	ID              int64
	Slug            string // Стабильный идентификатор, используется фронтендом
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Active          bool // Деактивация мягкая: услуга скрывается, но не удаляется

	CreatedAt time.Time
	UpdatedAt time.Time
}
