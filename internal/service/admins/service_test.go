package admins

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelashes/booking-service/internal/domain"
	adminRepo "github.com/daleelashes/booking-service/internal/infra/storage/admin"
	"github.com/daleelashes/booking-service/internal/service/admins/models"
	"github.com/daleelashes/booking-service/pkg/authtoken"
	"github.com/daleelashes/booking-service/pkg/password"
)

type fakeRepo struct {
	byID   map[int64]*domain.Admin
	nextID int64
}

func (f *fakeRepo) Create(_ context.Context, adm *domain.Admin) (*domain.Admin, error) {
	for _, existing := range f.byID {
		if existing.Email == adm.Email {
			return nil, adminRepo.ErrEmailExists
		}
	}
	f.nextID++
	created := *adm
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, adm := range f.byID {
		if adm.Email == email {
			return adm, nil
		}
	}
	return nil, adminRepo.ErrAdminNotFound
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Admin, error) {
	adm, ok := f.byID[id]
	if !ok {
		return nil, adminRepo.ErrAdminNotFound
	}
	return adm, nil
}

func (f *fakeRepo) List(_ context.Context) ([]domain.Admin, error) {
	out := make([]domain.Admin, 0, len(f.byID))
	for _, adm := range f.byID {
		out = append(out, *adm)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, adm *domain.Admin) error {
	existing, ok := f.byID[adm.ID]
	if !ok {
		return adminRepo.ErrAdminNotFound
	}
	existing.Name = adm.Name
	existing.Role = adm.Role
	existing.Active = adm.Active
	return nil
}

func (f *fakeRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	adm, ok := f.byID[id]
	if !ok {
		return adminRepo.ErrAdminNotFound
	}
	adm.PasswordHash = hash
	return nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, id int64) error {
	adm, ok := f.byID[id]
	if !ok {
		return adminRepo.ErrAdminNotFound
	}
	now := time.Now()
	adm.LastLogin = &now
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return adminRepo.ErrAdminNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Generate(adminID int64, email, role string) (string, error) {
	return fmt.Sprintf("token-%d-%s-%s", adminID, email, role), nil
}

func (fakeTokens) Validate(string) (*authtoken.Claims, error) {
	return nil, authtoken.ErrInvalidToken
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{byID: map[int64]*domain.Admin{}}
	return NewService(repo, fakeTokens{}, nopLogger{}), repo
}

func seedAdmin(t *testing.T, repo *fakeRepo, email, plainPassword string, role domain.AdminRole, active bool) *domain.Admin {
	t.Helper()
	hash, err := password.Hash(plainPassword)
	require.NoError(t, err)

	adm, err := repo.Create(context.Background(), &domain.Admin{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test Admin",
		Role:         role,
		Active:       active,
	})
	require.NoError(t, err)
	return adm
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService(t)
	adm := seedAdmin(t, repo, "owner@example.com", "secret123", domain.RoleSuperAdmin, true)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "Owner@Example.com ",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, adm.ID, resp.Admin.ID)
		assert.NotNil(t, repo.byID[adm.ID].LastLogin)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "owner@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		seedAdmin(t, repo, "former@example.com", "secret123", domain.RoleAdmin, false)

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "former@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})
}

func TestChangePassword(t *testing.T) {
	svc, repo := newTestService(t)
	adm := seedAdmin(t, repo, "owner@example.com", "secret123", domain.RoleAdmin, true)

	err := svc.ChangePassword(context.Background(), adm.ID, &models.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), adm.ID, &models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.ChangePassword(context.Background(), adm.ID, &models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	assert.NoError(t, password.Compare(repo.byID[adm.ID].PasswordHash, "newsecret"))
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService(t)
	seedAdmin(t, repo, "owner@example.com", "secret123", domain.RoleSuperAdmin, true)

	resp, err := svc.Create(context.Background(), &models.CreateAdminRequest{
		Email:    "second@example.com",
		Password: "secret456",
		Name:     "Second Admin",
		Role:     string(domain.RoleAdmin),
	})
	require.NoError(t, err)
	assert.True(t, resp.Active)

	_, err = svc.Create(context.Background(), &models.CreateAdminRequest{
		Email:    "second@example.com",
		Password: "secret456",
		Name:     "Duplicate",
		Role:     string(domain.RoleAdmin),
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = svc.Create(context.Background(), &models.CreateAdminRequest{
		Email:    "third@example.com",
		Password: "secret456",
		Name:     "Third",
		Role:     "owner",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_SelfGuard(t *testing.T) {
	svc, repo := newTestService(t)
	owner := seedAdmin(t, repo, "owner@example.com", "secret123", domain.RoleSuperAdmin, true)
	other := seedAdmin(t, repo, "other@example.com", "secret123", domain.RoleAdmin, true)

	assert.ErrorIs(t, svc.Delete(context.Background(), owner.ID, owner.ID), ErrCannotDeleteSelf)
	require.NoError(t, svc.Delete(context.Background(), other.ID, owner.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), other.ID, owner.ID), ErrAdminNotFound)
}
