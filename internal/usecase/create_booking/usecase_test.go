package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelashes/booking-service/internal/domain"
	serviceRepo "github.com/daleelashes/booking-service/internal/infra/storage/service"
	"github.com/daleelashes/booking-service/pkg/ptr"
	"github.com/daleelashes/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if !b.BlocksSlot() {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeBlockedRepo struct {
	blocked []domain.BlockedDate
}

func (f *fakeBlockedRepo) GetByDate(_ context.Context, _, _ time.Time) ([]domain.BlockedDate, error) {
	return f.blocked, nil
}

type fakeServiceRepo struct {
	services map[string]*domain.Service
}

func (f *fakeServiceRepo) GetActiveBySlug(_ context.Context, slug string) (*domain.Service, error) {
	svc, ok := f.services[slug]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func testPolicy(t *testing.T) domain.SchedulePolicy {
	t.Helper()
	policy, err := domain.NewSchedulePolicy("UTC", "09:00", "21:00", 30, "12:30", "13:00")
	require.NoError(t, err)
	return policy
}

func newTestUseCase(t *testing.T, bookings *fakeBookingRepo, blocked *fakeBlockedRepo) *UseCase {
	t.Helper()
	services := &fakeServiceRepo{services: map[string]*domain.Service{
		"lash-fill": {
			ID: 1, Slug: "lash-fill", Name: "Lash Fill",
			Price: 55, DurationMinutes: 60, Active: true,
		},
	}}
	uc := NewUseCase(bookings, blocked, services, fakeTxManager{}, testPolicy(t), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest(startTime types.TimeString) *Request {
	return &Request{
		ServiceSlug: "lash-fill",
		Date:        time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   startTime,
		FirstName:   "Dalia",
		LastName:    "Haddad",
		Email:       "dalia@example.com",
		Phone:       "+1-416-555-0101",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), validRequest("10:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "lash-fill", resp.ServiceSlug)
	assert.Equal(t, "Lash Fill", resp.ServiceName)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "11:00", resp.EndTime.String())
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.DepositAmount, resp.DepositAmount)

	require.Len(t, repo.bookings, 1)
	stored := repo.bookings[0]
	assert.Equal(t, time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC), stored.StartTime)
	assert.Equal(t, stored.StartTime.Add(time.Hour), stored.EndTime)
}

func TestExecute_WithPaymentProof(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, &fakeBlockedRepo{})

	proof := "/uploads/proofs/abc.jpg"
	req := validRequest("10:00")
	req.PaymentProofPath = ptr.Ptr(proof)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPaymentProofSubmitted), resp.Status)
	require.Len(t, repo.bookings, 1)
	require.NotNil(t, repo.bookings[0].PaymentProof)
	assert.Equal(t, proof, *repo.bookings[0].PaymentProof)
}

func TestExecute_InitialStatus(t *testing.T) {
	t.Run("validated for admin replacement", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(t, repo, &fakeBlockedRepo{})

		req := validRequest("10:00")
		req.Notes = "Замена отменённой записи #7"
		req.InitialStatus = domain.StatusValidated

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusValidated), resp.Status)
		require.Len(t, repo.bookings, 1)
		assert.Equal(t, domain.StatusValidated, repo.bookings[0].Status)
		assert.Equal(t, "Замена отменённой записи #7", repo.bookings[0].Notes)
	})

	t.Run("replacement still checks conflicts", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(t, repo, &fakeBlockedRepo{})

		_, err := uc.Execute(context.Background(), validRequest("10:00"))
		require.NoError(t, err)

		req := validRequest("10:30")
		req.InitialStatus = domain.StatusValidated

		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeBookingRepo{}, &fakeBlockedRepo{})

		req := validRequest("10:00")
		req.InitialStatus = "confirmed"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, &fakeBlockedRepo{})

	_, err := uc.Execute(context.Background(), validRequest("10:00"))
	require.NoError(t, err)

	// Точный дубликат интервала
	_, err = uc.Execute(context.Background(), validRequest("10:00"))
	require.ErrorIs(t, err, ErrSlotTaken)

	var taken *SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC), taken.Start)
	assert.Equal(t, time.Date(2026, 6, 15, 11, 0, 0, 0, time.UTC), taken.End)

	// Частичное пересечение тоже конфликт
	_, err = uc.Execute(context.Background(), validRequest("10:30"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	assert.Len(t, repo.bookings, 1)
}

func TestExecute_AdjacentSlotIsAllowed(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, &fakeBlockedRepo{})

	_, err := uc.Execute(context.Background(), validRequest("10:00"))
	require.NoError(t, err)

	// Встык после: 11:00-12:00
	_, err = uc.Execute(context.Background(), validRequest("11:00"))
	require.NoError(t, err)

	// Встык до: 09:00-10:00
	_, err = uc.Execute(context.Background(), validRequest("09:00"))
	require.NoError(t, err)

	assert.Len(t, repo.bookings, 3)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, &fakeBlockedRepo{})

	_, err := uc.Execute(context.Background(), validRequest("10:00"))
	require.NoError(t, err)
	repo.bookings[0].Status = domain.StatusCancelled

	_, err = uc.Execute(context.Background(), validRequest("10:00"))
	assert.NoError(t, err)
}

func TestExecute_BlockedDate(t *testing.T) {
	date := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("all day", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeBookingRepo{}, &fakeBlockedRepo{blocked: []domain.BlockedDate{
			{Date: date, AllDay: true, Reason: "vacation"},
		}})

		_, err := uc.Execute(context.Background(), validRequest("10:00"))
		assert.ErrorIs(t, err, ErrDateBlocked)
	})

	t.Run("partial overlap", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeBookingRepo{}, &fakeBlockedRepo{blocked: []domain.BlockedDate{
			{Date: date, StartTime: "14:00", EndTime: "16:00"},
		}})

		_, err := uc.Execute(context.Background(), validRequest("15:30"))
		assert.ErrorIs(t, err, ErrDateBlocked)
	})

	t.Run("partial adjacent is free", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeBookingRepo{}, &fakeBlockedRepo{blocked: []domain.BlockedDate{
			{Date: date, StartTime: "14:00", EndTime: "16:00"},
		}})

		_, err := uc.Execute(context.Background(), validRequest("16:00"))
		assert.NoError(t, err)
	})
}

func TestExecute_ScheduleViolations(t *testing.T) {
	uc := newTestUseCase(t, &fakeBookingRepo{}, &fakeBlockedRepo{})

	// Часовая услуга в 20:30 не успевает до закрытия в 21:00
	_, err := uc.Execute(context.Background(), validRequest("20:30"))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	_, err = uc.Execute(context.Background(), validRequest("08:00"))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// 12:00-13:00 пересекает обед 12:30-13:00
	_, err = uc.Execute(context.Background(), validRequest("12:00"))
	assert.ErrorIs(t, err, ErrLunchOverlap)

	// 13:00 начинается ровно в конце обеда - допустимо
	_, err = uc.Execute(context.Background(), validRequest("13:00"))
	assert.NoError(t, err)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(t, &fakeBookingRepo{}, &fakeBlockedRepo{})

	req := validRequest("10:00")
	req.Date = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(t, &fakeBookingRepo{}, &fakeBlockedRepo{})

	req := validRequest("10:00")
	req.ServiceSlug = "no-such-service"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(t, &fakeBookingRepo{}, &fakeBlockedRepo{})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty slug", func(r *Request) { r.ServiceSlug = "" }},
		{"empty first name", func(r *Request) { r.FirstName = "  " }},
		{"empty last name", func(r *Request) { r.LastName = "" }},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }},
		{"empty phone", func(r *Request) { r.Phone = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"bad start time", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest("10:00")
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SequentialBookingsNeverOverlap(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(t, repo, &fakeBlockedRepo{})

	// Пытаемся занять каждый второй получасовой кандидат часовой услугой:
	// часть запросов пройдёт, часть упрётся в конфликты и расписание
	for min := 9 * 60; min+60 <= 21*60; min += 30 {
		start, err := types.FromMinutes(min)
		require.NoError(t, err)
		_, _ = uc.Execute(context.Background(), validRequest(start))
	}

	require.NotEmpty(t, repo.bookings)
	for i := range repo.bookings {
		for j := i + 1; j < len(repo.bookings); j++ {
			a, b := repo.bookings[i], repo.bookings[j]
			overlap := a.StartTime.Before(b.EndTime) && a.EndTime.After(b.StartTime)
			assert.False(t, overlap, "bookings %d and %d overlap", a.ID, b.ID)
		}
	}
}
