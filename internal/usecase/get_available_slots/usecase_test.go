package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/internal/domain"
	salonrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/salon"
	"github.com/salonbook/salon-booking-service/pkg/ptr"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// 2026-09-07 is a Monday
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type fakeSalonRepo struct {
	salon *domain.Salon
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id int64) (*domain.Salon, error) {
	if f.salon == nil || f.salon.ID != id {
		return nil, salonrepo.ErrSalonNotFound
	}
	return f.salon, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetBySalonWithFilter(_ context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.SalonID != filter.SalonID {
			continue
		}
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		if filter.OnlyBooked && a.Status != domain.StatusBooked {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSalon() *domain.Salon {
	return &domain.Salon{
		ID:          1,
		OwnerID:     100,
		IsActive:    true,
		OfferStatus: domain.OfferStatusActive,
		Schedule: domain.ScheduleConfig{
			WorkingDays:         []string{"monday"},
			StartTime:           "09:00",
			EndTime:             "12:00",
			SlotDurationMinutes: 60,
			MaxBookingsPerSlot:  2,
		},
	}
}

func booked(salonID int64, date time.Time, start types.TimeString) *domain.Appointment {
	return &domain.Appointment{
		SalonID:   salonID,
		Date:      date,
		StartTime: start,
		Status:    domain.StatusBooked,
	}
}

func newTestUseCase(salon *domain.Salon, appts []*domain.Appointment) *UseCase {
	return New(
		&fakeSalonRepo{salon: salon},
		&fakeAppointmentRepo{appointments: appts},
		fixedTime{now: testDate},
		nopLogger{},
	)
}

func TestExecute_AllSlotsFree(t *testing.T) {
	uc := newTestUseCase(testSalon(), nil)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-07", resp.Date)
	require.Len(t, resp.Slots, 3)
	for _, s := range resp.Slots {
		assert.Equal(t, 2, s.RemainingCapacity)
		assert.Equal(t, 2, s.TotalCapacity)
		assert.Equal(t, 60, s.DurationMinutes)
	}
}

func TestExecute_BookedSlotsReduceCapacity(t *testing.T) {
	appts := []*domain.Appointment{
		booked(1, testDate, "09:00"),
		booked(1, testDate, "10:00"),
		booked(1, testDate, "10:00"),
	}
	uc := newTestUseCase(testSalon(), appts)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: testDate})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	byTime := make(map[types.TimeString]domain.Slot)
	for _, s := range resp.Slots {
		byTime[s.StartTime] = s
	}

	assert.Equal(t, 1, byTime["09:00"].RemainingCapacity)
	assert.Equal(t, 0, byTime["10:00"].RemainingCapacity)
	fullSlot := byTime["10:00"]
	assert.True(t, fullSlot.IsFull())
	assert.Equal(t, 2, byTime["11:00"].RemainingCapacity)
}

func TestExecute_CancelledAppointmentsDoNotCount(t *testing.T) {
	cancelled := booked(1, testDate, "09:00")
	cancelled.Status = domain.StatusCancelled
	uc := newTestUseCase(testSalon(), []*domain.Appointment{cancelled})

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Slots[0].RemainingCapacity)
}

func TestExecute_NonWorkingDayReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(testSalon(), nil)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: testDate.AddDate(0, 0, 1)})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BreakWindowExcluded(t *testing.T) {
	salon := testSalon()
	salon.Schedule.EndTime = "15:00"
	salon.Schedule.BreakStartTime = ptr.Ptr(types.TimeString("12:00"))
	salon.Schedule.BreakEndTime = ptr.Ptr(types.TimeString("13:00"))
	uc := newTestUseCase(salon, nil)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: testDate})

	require.NoError(t, err)

	times := make([]types.TimeString, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		times = append(times, s.StartTime)
	}
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00", "13:00", "14:00"}, times)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(testSalon(), nil)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: testDate.AddDate(0, 0, -1)})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayBoundaryUsesLocalDate(t *testing.T) {
	// вечер понедельника в UTC-10; в UTC уже наступил вторник
	evening := time.Date(2026, 9, 7, 20, 0, 0, 0, time.FixedZone("UTC-10", -10*3600))
	uc := New(
		&fakeSalonRepo{salon: testSalon()},
		&fakeAppointmentRepo{},
		fixedTime{now: evening},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: testDate})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_SalonNotFound(t *testing.T) {
	uc := newTestUseCase(testSalon(), nil)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 999, Date: testDate})

	assert.ErrorIs(t, err, ErrSalonNotFound)
}
