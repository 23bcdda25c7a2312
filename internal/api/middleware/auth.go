package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/internal/service/admins/models"
	"github.com/daleelashes/booking-service/pkg/authtoken"
)

const (
	msgMissingToken    = "отсутствует токен авторизации"
	msgInvalidToken    = "недействительный токен авторизации"
	msgExpiredToken    = "срок действия токена истек"
	msgAccountDisabled = "учетная запись отключена"
	msgForbidden       = "доступ запрещен"
)

type contextKey string

const (
	adminIDKey    contextKey = "adminID"
	adminEmailKey contextKey = "adminEmail"
	adminRoleKey  contextKey = "adminRole"
)

// TokenValidator проверяет подпись и срок действия токена
type TokenValidator interface {
	Validate(tokenString string) (*authtoken.Claims, error)
}

// AdminProvider отдает учетную запись администратора по ID
type AdminProvider interface {
	GetByID(ctx context.Context, id int64) (*models.AdminResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer токен и кладет данные администратора в контекст.
// Учетная запись перечитывается из хранилища: отключенный администратор
// теряет доступ сразу, не дожидаясь истечения токена.
func Auth(tokens TokenValidator, admins AdminProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Warn("%s %s - Missing authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header || tokenString == "" {
				logger.Warn("%s %s - Malformed authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := tokens.Validate(tokenString)
			if err != nil {
				if err == authtoken.ErrExpiredToken {
					logger.Warn("%s %s - Expired token", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgExpiredToken)
					return
				}
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			admin, err := admins.GetByID(r.Context(), claims.AdminID)
			if err != nil {
				logger.Warn("%s %s - Token for unknown admin: admin_id=%d", r.Method, r.URL.Path, claims.AdminID)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}
			if !admin.Active {
				logger.Warn("%s %s - Disabled admin account: admin_id=%d", r.Method, r.URL.Path, admin.ID)
				handlers.RespondUnauthorized(w, msgAccountDisabled)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, admin.ID)
			ctx = context.WithValue(ctx, adminEmailKey, admin.Email)
			ctx = context.WithValue(ctx, adminRoleKey, admin.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin пропускает только администраторов с ролью super_admin.
// Должен стоять после Auth.
func RequireSuperAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetAdminRole(r.Context())
			if !ok || role != string(domain.RoleSuperAdmin) {
				logger.Warn("%s %s - Super admin role required", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetAdminID возвращает ID администратора из контекста запроса
func GetAdminID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(adminIDKey).(int64)
	return id, ok
}

// GetAdminEmail возвращает email администратора из контекста запроса
func GetAdminEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(adminEmailKey).(string)
	return email, ok
}

// GetAdminRole возвращает роль администратора из контекста запроса
func GetAdminRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(adminRoleKey).(string)
	return role, ok
}
