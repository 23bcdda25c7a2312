package blockeddates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelashes/booking-service/internal/domain"
	blockedRepo "github.com/daleelashes/booking-service/internal/infra/storage/blocked"
	"github.com/daleelashes/booking-service/internal/service/blockeddates/models"
)

type fakeRepo struct {
	blocked []domain.BlockedDate
	nextID  int64
}

func (f *fakeRepo) Create(_ context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error) {
	if bd.AllDay {
		for _, existing := range f.blocked {
			if existing.AllDay && existing.Date.Equal(bd.Date) {
				return nil, blockedRepo.ErrDateAlreadyBlocked
			}
		}
	}
	f.nextID++
	created := *bd
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.blocked = append(f.blocked, created)
	return &created, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]domain.BlockedDate, error) {
	return f.blocked, nil
}

func (f *fakeRepo) GetByDate(_ context.Context, _, _ time.Time) ([]domain.BlockedDate, error) {
	return f.blocked, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	for i, bd := range f.blocked {
		if bd.ID == id {
			f.blocked = append(f.blocked[:i], f.blocked[i+1:]...)
			return nil
		}
	}
	return blockedRepo.ErrBlockedDateNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	policy, err := domain.NewSchedulePolicy("UTC", "09:00", "21:00", 30, "12:30", "13:00")
	require.NoError(t, err)
	return NewService(repo, policy, nopLogger{})
}

func TestCreate_AllDay(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	resp, err := svc.Create(context.Background(), 1, &models.CreateBlockedDateRequest{
		Date:   "2026-06-15",
		Reason: "vacation",
		AllDay: true,
	})
	require.NoError(t, err)
	assert.True(t, resp.AllDay)
	assert.Equal(t, "2026-06-15", resp.Date)
	assert.Equal(t, int64(1), resp.CreatedBy)

	// Повторное закрытие того же дня - конфликт
	_, err = svc.Create(context.Background(), 1, &models.CreateBlockedDateRequest{
		Date:   "2026-06-15",
		AllDay: true,
	})
	assert.ErrorIs(t, err, ErrDateAlreadyBlocked)
}

func TestCreate_Partial(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	resp, err := svc.Create(context.Background(), 2, &models.CreateBlockedDateRequest{
		Date:      "2026-06-15",
		Reason:    "training",
		StartTime: "14:00",
		EndTime:   "16:00",
	})
	require.NoError(t, err)
	assert.False(t, resp.AllDay)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, "16:00", resp.EndTime)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	cases := []struct {
		name string
		req  models.CreateBlockedDateRequest
	}{
		{"bad date", models.CreateBlockedDateRequest{Date: "15.06.2026", AllDay: true}},
		{"all day with time range", models.CreateBlockedDateRequest{Date: "2026-06-15", AllDay: true, StartTime: "14:00"}},
		{"partial without times", models.CreateBlockedDateRequest{Date: "2026-06-15"}},
		{"inverted range", models.CreateBlockedDateRequest{Date: "2026-06-15", StartTime: "16:00", EndTime: "14:00"}},
		{"empty range", models.CreateBlockedDateRequest{Date: "2026-06-15", StartTime: "14:00", EndTime: "14:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, &tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	resp, err := svc.Create(context.Background(), 1, &models.CreateBlockedDateRequest{
		Date:   "2026-06-15",
		AllDay: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), resp.ID), ErrBlockedDateNotFound)
}
