package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelashes/booking-service/internal/domain"
	serviceRepo "github.com/daleelashes/booking-service/internal/infra/storage/service"
	"github.com/daleelashes/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDayWindow(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeBlockedRepo struct {
	blocked []domain.BlockedDate
	err     error
}

func (f *fakeBlockedRepo) GetByDate(_ context.Context, _, _ time.Time) ([]domain.BlockedDate, error) {
	return f.blocked, f.err
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Расписание 09:00-21:00, шаг 30 минут, обед 12:30-13:00
func testPolicy(t *testing.T) domain.SchedulePolicy {
	t.Helper()
	policy, err := domain.NewSchedulePolicy("UTC", "09:00", "21:00", 30, "12:30", "13:00")
	require.NoError(t, err)
	return policy
}

// То же расписание без обеденного окна
func testPolicyNoLunch(t *testing.T) domain.SchedulePolicy {
	t.Helper()
	policy, err := domain.NewSchedulePolicy("UTC", "09:00", "21:00", 30, "00:00", "00:00")
	require.NoError(t, err)
	return policy
}

func testServices() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*domain.Service{
		"classic-set": {
			ID: 1, Slug: "classic-set", Name: "Classic Set",
			Price: 90, DurationMinutes: 120, Active: true,
		},
		"lash-fill": {
			ID: 2, Slug: "lash-fill", Name: "Lash Fill",
			Price: 55, DurationMinutes: 60, Active: true,
		},
		"quick-fix": {
			ID: 3, Slug: "quick-fix", Name: "Quick Fix",
			Price: 25, DurationMinutes: 30, Active: true,
		},
	}}
}

func newTestUseCase(policy domain.SchedulePolicy, bookings *fakeBookingRepo, blocked *fakeBlockedRepo) *UseCase {
	return NewUseCase(bookings, blocked, testServices(), policy, nopLogger{})
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return d
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func booking(start time.Time, durationMinutes int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ServiceSlug:     "lash-fill",
		DurationMinutes: durationMinutes,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(durationMinutes) * time.Minute),
		Status:          status,
	}
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := newTestUseCase(testPolicy(t), &fakeBookingRepo{}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        day(t, "2026-06-15"),
		ServiceSlug: "lash-fill",
	})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)

	// Часовая услуга: кандидаты 09:00..20:00, обед выбивает 12:00 и 12:30
	assert.Len(t, slots, 21)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "20:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:30")
	assert.Contains(t, slots, "11:30")
	assert.Contains(t, slots, "13:00")

	assert.Equal(t, "Lash Fill", resp.Service.Name)
	assert.Equal(t, 60, resp.Service.DurationMinutes)
}

func TestExecute_SlotCountFormula(t *testing.T) {
	// Без обеда число слотов пустого дня: (closing - duration - opening)/step + 1
	policy := testPolicyNoLunch(t)

	cases := []struct {
		slug     string
		expected int
	}{
		{"quick-fix", 24},   // 30 минут
		{"lash-fill", 23},   // 60 минут
		{"classic-set", 21}, // 120 минут
	}

	for _, tc := range cases {
		t.Run(tc.slug, func(t *testing.T) {
			uc := newTestUseCase(policy, &fakeBookingRepo{}, &fakeBlockedRepo{})

			resp, err := uc.Execute(context.Background(), &Request{
				Date:        day(t, "2026-06-15"),
				ServiceSlug: tc.slug,
			})
			require.NoError(t, err)
			assert.Len(t, resp.Slots, tc.expected)
		})
	}
}

func TestExecute_OccupiedInterval(t *testing.T) {
	// Бронирование 10:00-12:30; для часовой услуги свободны 09:00 и 12:30,
	// а 09:30..12:00 пересекаются с занятым промежутком
	date := day(t, "2026-06-15")
	start := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(testPolicyNoLunch(t),
		&fakeBookingRepo{bookings: []*domain.Booking{booking(start, 150, domain.StatusValidated)}},
		&fakeBlockedRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, ServiceSlug: "lash-fill"})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "12:30")
	for _, s := range []string{"09:30", "10:00", "10:30", "11:00", "11:30", "12:00"} {
		assert.NotContains(t, slots, s, "slot %s overlaps the booking", s)
	}
}

func TestExecute_AdjacentBookingIsNotConflict(t *testing.T) {
	// Слот, заканчивающийся ровно в начале бронирования (и наоборот), свободен
	date := day(t, "2026-06-15")
	start := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(testPolicyNoLunch(t),
		&fakeBookingRepo{bookings: []*domain.Booking{booking(start, 60, domain.StatusPending)}},
		&fakeBlockedRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, ServiceSlug: "lash-fill"})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	date := day(t, "2026-06-15")
	start := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(testPolicyNoLunch(t),
		&fakeBookingRepo{bookings: []*domain.Booking{booking(start, 60, domain.StatusCancelled)}},
		&fakeBlockedRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, ServiceSlug: "lash-fill"})
	require.NoError(t, err)

	assert.Contains(t, slotStrings(resp.Slots), "10:00")
}

func TestExecute_AllDayBlock(t *testing.T) {
	date := day(t, "2026-06-15")

	uc := newTestUseCase(testPolicy(t),
		&fakeBookingRepo{},
		&fakeBlockedRepo{blocked: []domain.BlockedDate{
			{Date: date, AllDay: true, Reason: "holiday"},
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, ServiceSlug: "lash-fill"})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_PartialBlock(t *testing.T) {
	// Блокировка 14:00-16:00: для часовой услуги свободны 13:00 и 16:00,
	// а 13:30..15:30 выпадают
	date := day(t, "2026-06-15")

	uc := newTestUseCase(testPolicyNoLunch(t),
		&fakeBookingRepo{},
		&fakeBlockedRepo{blocked: []domain.BlockedDate{
			{Date: date, AllDay: false, StartTime: "14:00", EndTime: "16:00"},
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, ServiceSlug: "lash-fill"})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	assert.Contains(t, slots, "13:00")
	assert.Contains(t, slots, "16:00")
	for _, s := range []string{"13:30", "14:00", "14:30", "15:00", "15:30"} {
		assert.NotContains(t, slots, s, "slot %s overlaps the block", s)
	}
}

func TestExecute_BookingTimezoneConversion(t *testing.T) {
	// Бронирование хранится в UTC; 14:00 UTC летом - это 10:00 в Торонто
	policy, err := domain.NewSchedulePolicy("America/Toronto", "09:00", "21:00", 30, "00:00", "00:00")
	require.NoError(t, err)

	start := time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC)

	uc := newTestUseCase(policy,
		&fakeBookingRepo{bookings: []*domain.Booking{booking(start, 60, domain.StatusValidated)}},
		&fakeBlockedRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        day(t, "2026-06-15"),
		ServiceSlug: "lash-fill",
	})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "11:00")
	assert.Contains(t, slots, "14:00")
}

func TestExecute_Idempotent(t *testing.T) {
	date := day(t, "2026-06-15")
	start := time.Date(2026, 6, 15, 15, 0, 0, 0, time.UTC)

	uc := newTestUseCase(testPolicy(t),
		&fakeBookingRepo{bookings: []*domain.Booking{booking(start, 60, domain.StatusPending)}},
		&fakeBlockedRepo{},
	)

	first, err := uc.Execute(context.Background(), &Request{Date: date, ServiceSlug: "classic-set"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: date, ServiceSlug: "classic-set"})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_SlotsAreSortedAscending(t *testing.T) {
	uc := newTestUseCase(testPolicy(t), &fakeBookingRepo{}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        day(t, "2026-06-15"),
		ServiceSlug: "classic-set",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)

	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].IsBefore(resp.Slots[i]),
			"slots must be strictly ascending: %s before %s", resp.Slots[i-1], resp.Slots[i])
	}
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(testPolicy(t), &fakeBookingRepo{}, &fakeBlockedRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:        day(t, "2026-06-15"),
		ServiceSlug: "no-such-service",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(testPolicy(t), &fakeBookingRepo{}, &fakeBlockedRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: day(t, "2026-06-15")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceSlug: "lash-fill"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
