package models

import (
	"time"

	"github.com/daleelashes/booking-service/internal/domain"
)

// Request модели

// LoginRequest запрос на вход в панель администратора
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest запрос на смену собственного пароля
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreateAdminRequest запрос на создание учётной записи
type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UpdateAdminRequest запрос на обновление учётной записи
type UpdateAdminRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Response модели

// AdminResponse ответ с данными администратора (без хеша пароля)
type AdminResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// AdminListResponse ответ со списком администраторов
type AdminListResponse struct {
	Admins []AdminResponse `json:"admins"`
}

// Методы конвертации

// FromDomainAdmin конвертирует domain модель в DTO
func FromDomainAdmin(a *domain.Admin) *AdminResponse {
	if a == nil {
		return nil
	}
	return &AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      string(a.Role),
		Active:    a.Active,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}

// FromDomainAdminList конвертирует список domain моделей в DTO
func FromDomainAdminList(admins []domain.Admin) *AdminListResponse {
	items := make([]AdminResponse, 0, len(admins))
	for i := range admins {
		items = append(items, *FromDomainAdmin(&admins[i]))
	}
	return &AdminListResponse{Admins: items}
}
