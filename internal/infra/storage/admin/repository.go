package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/daleelashes/booking-service/internal/domain"
	"github.com/daleelashes/booking-service/pkg/dbmetrics"
	"github.com/daleelashes/booking-service/pkg/psqlbuilder"
)

const (
	tableAdmins = "admins"

	pqUniqueViolation = "23505"
)

var adminColumns = []string{
	"id",
	"email",
	"password_hash",
	"name",
	"role",
	"active",
	"last_login",
	"created_at",
	"updated_at",
}

// Repository - репозиторий для работы с учётными записями администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый репозиторий администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую учётную запись администратора
func (r *Repository) Create(ctx context.Context, adm *domain.Admin) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableAdmins).
		Columns("email", "password_hash", "name", "role", "active").
		Values(adm.Email, adm.PasswordHash, adm.Name, adm.Role, adm.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - building insert query: %v", ErrBuildQuery, err)
	}

	created := *adm
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, fmt.Errorf("%w: Create - email %q", ErrEmailExists, adm.Email)
		}
		return nil, fmt.Errorf("%w: Create - executing insert query: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByEmail возвращает администратора по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return r.getBy(ctx, "GetByEmail", sq.Eq{"email": email})
}

// GetByID возвращает администратора по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	return r.getBy(ctx, "GetByID", sq.Eq{"id": id})
}

// List возвращает всех администраторов
func (r *Repository) List(ctx context.Context) ([]domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(adminColumns...).
		From(tableAdmins).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - building select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - executing select query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	admins := make([]domain.Admin, 0)
	for rows.Next() {
		adm, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scanning row: %v", ErrScanRow, err)
		}
		admins = append(admins, *adm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterating rows: %v", ErrExecQuery, err)
	}

	return admins, nil
}

// Update обновляет имя, роль и активность администратора
func (r *Repository) Update(ctx context.Context, adm *domain.Admin) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableAdmins).
		Set("name", adm.Name).
		Set("role", adm.Role).
		Set("active", adm.Active).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": adm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - building update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "Update", query, args, adm.ID)
}

// UpdatePassword сохраняет новый хеш пароля
func (r *Repository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableAdmins).
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - building update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "UpdatePassword", query, args, id)
}

// UpdateLastLogin фиксирует время последнего входа
func (r *Repository) UpdateLastLogin(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableAdmins).
		Set("last_login", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - building update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "UpdateLastLogin", query, args, id)
}

// Delete удаляет учётную запись администратора
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableAdmins).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - building delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "Delete", query, args, id)
}

func (r *Repository) getBy(ctx context.Context, method string, where sq.Eq) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(adminColumns...).
		From(tableAdmins).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - building select query: %v", ErrBuildQuery, method, err)
	}

	adm, err := scanAdmin(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrAdminNotFound, method)
		}
		return nil, fmt.Errorf("%w: %s - scanning row: %v", ErrScanRow, method, err)
	}

	return adm, nil
}

func (r *Repository) exec(ctx context.Context, executor DBExecutor, method, query string, args []interface{}, id int64) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - executing query: %v", ErrExecQuery, method, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - reading rows affected: %v", ErrExecQuery, method, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s - id %d", ErrAdminNotFound, method, id)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdmin(row rowScanner) (*domain.Admin, error) {
	var adm domain.Admin
	err := row.Scan(
		&adm.ID,
		&adm.Email,
		&adm.PasswordHash,
		&adm.Name,
		&adm.Role,
		&adm.Active,
		&adm.LastLogin,
		&adm.CreatedAt,
		&adm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &adm, nil
}
