package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelashes/booking-service/internal/domain"
	bookingRepo "github.com/daleelashes/booking-service/internal/infra/storage/booking"
	"github.com/daleelashes/booking-service/internal/service/bookings/models"
	"github.com/daleelashes/booking-service/pkg/ptr"
)

type fakeRepo struct {
	byID map[int64]*domain.Booking
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter, _ func(time.Time) (time.Time, time.Time)) ([]*domain.Booking, int64, error) {
	out := make([]*domain.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) UpdatePaymentAmount(_ context.Context, id int64, amount float64) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.PaymentAmountReceived = &amount
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.byID, id)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 6, 14, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	policy, err := domain.NewSchedulePolicy("UTC", "09:00", "21:00", 30, "12:30", "13:00")
	require.NoError(t, err)

	svc := NewService(repo, policy, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func storedBooking(id int64, start time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ServiceSlug:     "lash-fill",
		ServiceName:     "Lash Fill",
		DurationMinutes: 60,
		FirstName:       "Dalia",
		LastName:        "Haddad",
		Email:           "dalia@example.com",
		Phone:           "+1-416-555-0101",
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		Status:          status,
	}
}

func TestGetByID(t *testing.T) {
	start := testNow.AddDate(0, 0, 3)
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		7: storedBooking(7, start, domain.StatusPending),
	}}
	svc := newTestService(t, repo)

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, start.Format(domain.TimeFormat), resp.StartTime)
	assert.Equal(t, start.Add(time.Hour).Format(domain.TimeFormat), resp.EndTime)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	t.Run("more than a day before start", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Booking{
			1: storedBooking(1, testNow.Add(48*time.Hour), domain.StatusValidated),
		}}
		svc := newTestService(t, repo)

		resp, err := svc.Cancel(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("exactly 24 hours before start", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Booking{
			1: storedBooking(1, testNow.Add(24*time.Hour), domain.StatusPending),
		}}
		svc := newTestService(t, repo)

		_, err := svc.Cancel(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("less than 24 hours before start", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Booking{
			1: storedBooking(1, testNow.Add(23*time.Hour), domain.StatusPending),
		}}
		svc := newTestService(t, repo)

		_, err := svc.Cancel(context.Background(), 1)
		assert.ErrorIs(t, err, ErrTooLateToCancel)
		assert.Equal(t, domain.StatusPending, repo.byID[1].Status)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Booking{
			1: storedBooking(1, testNow.Add(48*time.Hour), domain.StatusCancelled),
		}}
		svc := newTestService(t, repo)

		_, err := svc.Cancel(context.Background(), 1)
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(t, &fakeRepo{byID: map[int64]*domain.Booking{}})

		_, err := svc.Cancel(context.Background(), 42)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		1: storedBooking(1, testNow.Add(48*time.Hour), domain.StatusPaymentProofSubmitted),
	}}
	svc := newTestService(t, repo)

	amount := 25.0
	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status:                string(domain.StatusValidated),
		PaymentAmountReceived: &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusValidated), resp.Status)
	require.NotNil(t, resp.PaymentAmountReceived)
	assert.Equal(t, amount, *resp.PaymentAmountReceived)

	_, err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{
		Status: string(domain.StatusCompleted),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		1: storedBooking(1, testNow.Add(48*time.Hour), domain.StatusPending),
	}}
	svc := newTestService(t, repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrBookingNotFound)
}

func TestList_StatusFilter(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		1: storedBooking(1, testNow.Add(24*time.Hour), domain.StatusPending),
		2: storedBooking(2, testNow.Add(48*time.Hour), domain.StatusCancelled),
	}}
	svc := newTestService(t, repo)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr(string(domain.StatusPending))})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("bogus")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
