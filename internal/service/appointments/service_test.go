package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/internal/domain"
	apptrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/appointment"
	salonrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/salon"
	"github.com/salonbook/salon-booking-service/internal/integrations/userservice"
)

const (
	ownerID    = int64(100)
	customerID = int64(7)
	strangerID = int64(55)
)

var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type fakeAppointmentRepo struct {
	byID    map[int64]*domain.Appointment
	userIDs []int64
	updated map[int64]domain.AppointmentStatus
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{
		byID:    make(map[int64]*domain.Appointment),
		updated: make(map[int64]domain.AppointmentStatus),
	}
	for _, a := range appts {
		repo.byID[a.ID] = a
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, apptrepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetByUserID(_ context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.byID {
		if a.UserID != userID {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) GetByOwnerID(_ context.Context, ownerID int64) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.byID {
		if a.OwnerID == ownerID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) GetBySalonWithFilter(_ context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.byID {
		if a.SalonID != filter.SalonID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) GetDistinctUserIDsByOwner(_ context.Context, _ int64) ([]int64, error) {
	return f.userIDs, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, from, to domain.AppointmentStatus) error {
	a, ok := f.byID[id]
	if !ok {
		return apptrepo.ErrAppointmentNotFound
	}
	if a.Status != from {
		return apptrepo.ErrStatusChanged
	}
	a.Status = to
	f.updated[id] = to
	return nil
}

// staleReadRepo имитирует гонку переходов: чтение возвращает устаревший
// статус booked, хотя сохранённая запись уже переведена дальше
type staleReadRepo struct {
	*fakeAppointmentRepo
}

func (s *staleReadRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, err := s.fakeAppointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Status = domain.StatusBooked
	return a, nil
}

type fakeSalonRepo struct {
	salon *domain.Salon
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id int64) (*domain.Salon, error) {
	if f.salon == nil || f.salon.ID != id {
		return nil, salonrepo.ErrSalonNotFound
	}
	return f.salon, nil
}

type fakeUserClient struct {
	profiles map[int64]*userservice.Profile
	degraded bool
}

func (f *fakeUserClient) GetProfileWithGracefulDegradation(_ context.Context, userID int64) (*userservice.Profile, error) {
	if f.degraded {
		return nil, userservice.ErrServiceDegraded
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return p, nil
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

func bookedAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		SalonID:   1,
		UserID:    customerID,
		OwnerID:   ownerID,
		Date:      testDate,
		StartTime: "10:00",
		Status:    domain.StatusBooked,
	}
}

func newTestService(repo AppointmentRepository, userClient UserServiceClient) *Service {
	if userClient == nil {
		userClient = &fakeUserClient{}
	}
	salon := &domain.Salon{ID: 1, OwnerID: ownerID, IsActive: true, OfferStatus: domain.OfferStatusActive}
	return NewService(repo, &fakeSalonRepo{salon: salon}, userClient, fixedTime{now: testDate}, nopLogger{})
}

func TestGetByID_Access(t *testing.T) {
	repo := newFakeAppointmentRepo(bookedAppointment(1))
	svc := newTestService(repo, nil)

	// клиент записи
	info, err := svc.GetByID(context.Background(), 1, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.ID)

	// владелец салона
	_, err = svc.GetByID(context.Background(), 1, ownerID)
	assert.NoError(t, err)

	// посторонний
	_, err = svc.GetByID(context.Background(), 1, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// несуществующая запись
	_, err = svc.GetByID(context.Background(), 999, customerID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel(t *testing.T) {
	t.Run("customer cancels own booking", func(t *testing.T) {
		repo := newFakeAppointmentRepo(bookedAppointment(1))
		svc := newTestService(repo, nil)

		info, err := svc.Cancel(context.Background(), 1, customerID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", info.Status)
		assert.Equal(t, domain.StatusCancelled, repo.updated[1])
	})

	t.Run("owner cancels any booking of the salon", func(t *testing.T) {
		repo := newFakeAppointmentRepo(bookedAppointment(1))
		svc := newTestService(repo, nil)

		_, err := svc.Cancel(context.Background(), 1, ownerID)
		assert.NoError(t, err)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := newFakeAppointmentRepo(bookedAppointment(1))
		svc := newTestService(repo, nil)

		_, err := svc.Cancel(context.Background(), 1, strangerID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled appointment stays cancelled", func(t *testing.T) {
		appt := bookedAppointment(1)
		appt.Status = domain.StatusCancelled
		repo := newFakeAppointmentRepo(appt)
		svc := newTestService(repo, nil)

		_, err := svc.Cancel(context.Background(), 1, customerID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Empty(t, repo.updated)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("owner completes booking", func(t *testing.T) {
		repo := newFakeAppointmentRepo(bookedAppointment(1))
		svc := newTestService(repo, nil)

		info, err := svc.UpdateStatus(context.Background(), 1, ownerID, domain.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, "completed", info.Status)
	})

	t.Run("customer cannot change status", func(t *testing.T) {
		repo := newFakeAppointmentRepo(bookedAppointment(1))
		svc := newTestService(repo, nil)

		_, err := svc.UpdateStatus(context.Background(), 1, customerID, domain.StatusCompleted)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		appt := bookedAppointment(1)
		appt.Status = domain.StatusCompleted
		repo := newFakeAppointmentRepo(appt)
		svc := newTestService(repo, nil)

		_, err := svc.UpdateStatus(context.Background(), 1, ownerID, domain.StatusCancelled)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		// статус не изменился
		stored, getErr := repo.GetByID(context.Background(), 1)
		require.NoError(t, getErr)
		assert.Equal(t, domain.StatusCompleted, stored.Status)
	})

	t.Run("concurrent transition loses to the first writer", func(t *testing.T) {
		// stored запись уже completed, но проверяющий переход видит
		// устаревший снимок со статусом booked
		appt := bookedAppointment(1)
		appt.Status = domain.StatusCompleted
		repo := newFakeAppointmentRepo(appt)
		svc := newTestService(&staleReadRepo{fakeAppointmentRepo: repo}, nil)

		_, err := svc.Cancel(context.Background(), 1, customerID)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		stored, getErr := repo.GetByID(context.Background(), 1)
		require.NoError(t, getErr)
		assert.Equal(t, domain.StatusCompleted, stored.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := newFakeAppointmentRepo(bookedAppointment(1))
		svc := newTestService(repo, nil)

		_, err := svc.UpdateStatus(context.Background(), 1, ownerID, "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestGetUniqueCustomers(t *testing.T) {
	t.Run("profiles resolved", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		repo.userIDs = []int64{7, 8}
		client := &fakeUserClient{profiles: map[int64]*userservice.Profile{
			7: {ID: 7, Name: "Alice", Email: "alice@example.com"},
			8: {ID: 8, Name: "Bob", Email: "bob@example.com"},
		}}
		svc := newTestService(repo, client)

		customers, err := svc.GetUniqueCustomers(context.Background(), ownerID)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Alice", customers[0].Name)
		assert.False(t, customers[0].ProfileMissing)
	})

	t.Run("degraded user service still returns IDs", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		repo.userIDs = []int64{7, 8}
		svc := newTestService(repo, &fakeUserClient{degraded: true})

		customers, err := svc.GetUniqueCustomers(context.Background(), ownerID)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, int64(7), customers[0].UserID)
		assert.True(t, customers[0].ProfileMissing)
		assert.Empty(t, customers[0].Name)
	})
}

func TestGetUserDashboard(t *testing.T) {
	past := bookedAppointment(1)
	past.Date = testDate.AddDate(0, 0, -14)

	upcoming := bookedAppointment(2)

	completed := bookedAppointment(3)
	completed.Status = domain.StatusCompleted

	cancelled := bookedAppointment(4)
	cancelled.Status = domain.StatusCancelled

	repo := newFakeAppointmentRepo(past, upcoming, completed, cancelled)
	svc := newTestService(repo, nil)

	dashboard, err := svc.GetUserDashboard(context.Background(), customerID)
	require.NoError(t, err)

	assert.Equal(t, 4, dashboard.Total)
	// прошедшая активная запись не считается предстоящей
	assert.Equal(t, 1, dashboard.Upcoming)
	assert.Equal(t, 1, dashboard.Completed)
	assert.Equal(t, 1, dashboard.Cancelled)
}

func TestGetSalonDashboard(t *testing.T) {
	first := bookedAppointment(1)
	second := bookedAppointment(2)
	second.UserID = 8
	third := bookedAppointment(3)
	third.Status = domain.StatusCompleted

	repo := newFakeAppointmentRepo(first, second, third)
	svc := newTestService(repo, nil)

	dashboard, err := svc.GetSalonDashboard(context.Background(), ownerID)
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.Total)
	assert.Equal(t, 2, dashboard.Upcoming)
	assert.Equal(t, 1, dashboard.Completed)
	// третий визит того же клиента не увеличивает счётчик уникальных
	assert.Equal(t, 2, dashboard.UniqueCustomers)
}

func TestGetSalonAppointments_OwnerOnly(t *testing.T) {
	repo := newFakeAppointmentRepo(bookedAppointment(1))
	svc := newTestService(repo, nil)

	infos, err := svc.GetSalonAppointments(context.Background(), ownerID, domain.SalonAppointmentsFilter{SalonID: 1})
	require.NoError(t, err)
	assert.Len(t, infos, 1)

	_, err = svc.GetSalonAppointments(context.Background(), customerID, domain.SalonAppointmentsFilter{SalonID: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetSalonAppointments(context.Background(), ownerID, domain.SalonAppointmentsFilter{SalonID: 999})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}
