package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/internal/domain"
	salonrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/salon"
)

const ownerID = int64(100)

type fakeSalonRepo struct {
	salon    *domain.Salon
	replaced *domain.ScheduleConfig
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id int64) (*domain.Salon, error) {
	if f.salon == nil || f.salon.ID != id {
		return nil, salonrepo.ErrSalonNotFound
	}
	return f.salon, nil
}

func (f *fakeSalonRepo) ReplaceScheduleConfig(_ context.Context, salonID int64, cfg *domain.ScheduleConfig) error {
	if f.salon == nil || f.salon.ID != salonID {
		return salonrepo.ErrSalonNotFound
	}
	f.replaced = cfg
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		WorkingDays:         []string{"monday", "friday"},
		StartTime:           "09:00",
		EndTime:             "18:00",
		SlotDurationMinutes: 30,
		MaxBookingsPerSlot:  3,
	}
}

func newTestService() (*Service, *fakeSalonRepo) {
	repo := &fakeSalonRepo{salon: &domain.Salon{
		ID:       1,
		OwnerID:  ownerID,
		Schedule: *validConfig(),
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestGet(t *testing.T) {
	svc, _ := newTestService()

	cfg, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"monday", "friday"}, cfg.WorkingDays)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestReplace(t *testing.T) {
	t.Run("owner replaces config", func(t *testing.T) {
		svc, repo := newTestService()
		cfg := validConfig()
		cfg.SlotDurationMinutes = 45

		updated, err := svc.Replace(context.Background(), 1, ownerID, cfg)
		require.NoError(t, err)
		assert.Equal(t, 45, updated.SlotDurationMinutes)
		require.NotNil(t, repo.replaced)
		assert.Equal(t, 45, repo.replaced.SlotDurationMinutes)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.Replace(context.Background(), 1, 42, validConfig())
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, repo.replaced)
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		svc, repo := newTestService()
		cfg := validConfig()
		cfg.WorkingDays = nil

		_, err := svc.Replace(context.Background(), 1, ownerID, cfg)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, repo.replaced)
	})

	t.Run("unknown salon", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Replace(context.Background(), 999, ownerID, validConfig())
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})
}
