package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonbook/salon-booking-service/internal/domain"
	salonrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/salon"
)

// Service сервис работы с конфигурацией расписания салона
type Service struct {
	salonRepo SalonRepository
	log       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(salonRepo SalonRepository, log Logger) *Service {
	return &Service{
		salonRepo: salonRepo,
		log:       log,
	}
}

// Get возвращает конфигурацию расписания салона
// Конфигурация публична: её видит любой, кто смотрит страницу салона
func (s *Service) Get(ctx context.Context, salonID int64) (*domain.ScheduleConfig, error) {
	salon, err := s.getSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	return &salon.Schedule, nil
}

// Replace атомарно заменяет конфигурацию расписания салона целиком
// Частичные обновления не поддерживаются: клиент присылает полную
// конфигурацию, она валидируется и записывается одним обновлением.
// Уже созданные записи при смене расписания не трогаем
func (s *Service) Replace(ctx context.Context, salonID, requestorID int64, cfg *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	salon, err := s.getSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	if salon.OwnerID != requestorID {
		return nil, fmt.Errorf("%w: salon_id=%d requestor=%d", ErrAccessDenied, salonID, requestorID)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.salonRepo.ReplaceScheduleConfig(ctx, salonID, cfg); err != nil {
		if errors.Is(err, salonrepo.ErrSalonNotFound) {
			return nil, fmt.Errorf("%w: salon_id=%d", ErrSalonNotFound, salonID)
		}
		s.log.Error("Failed to replace schedule config for salon %d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to replace schedule config: %v", ErrInternal, err)
	}

	s.log.Info("Schedule config replaced for salon %d by user %d", salonID, requestorID)

	return cfg, nil
}

func (s *Service) getSalon(ctx context.Context, salonID int64) (*domain.Salon, error) {
	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonrepo.ErrSalonNotFound) {
			return nil, fmt.Errorf("%w: salon_id=%d", ErrSalonNotFound, salonID)
		}
		s.log.Error("Failed to get salon %d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	return salon, nil
}
