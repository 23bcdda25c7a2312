package domain

import "time"

// AdminRole уровень доступа учётной записи администратора
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

// Admin учётная запись панели администратора
type Admin struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt, никогда не отдаётся наружу
	Name         string
	Role         AdminRole
	Active       bool
	LastLogin    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSuperAdmin проверяет право управлять другими администраторами
func (a *Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// ValidAdminRole проверяет, что строка - допустимая роль
func ValidAdminRole(s string) bool {
	switch AdminRole(s) {
	case RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}
