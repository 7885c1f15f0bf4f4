package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
	apptrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/appointment"
	salonrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/salon"
	"github.com/salonbook/salon-booking-service/internal/integrations/userservice"
	"github.com/salonbook/salon-booking-service/internal/service/appointments/models"
)

// Service сервис работы с записями: просмотр, смена статусов, сводки
type Service struct {
	appointmentRepo AppointmentRepository
	salonRepo       SalonRepository
	userClient      UserServiceClient
	timeProvider    TimeProvider
	log             Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	salonRepo SalonRepository,
	userClient UserServiceClient,
	timeProvider TimeProvider,
	log Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		userClient:      userClient,
		timeProvider:    timeProvider,
		log:             log,
	}
}

// GetByID возвращает запись по ID
// Доступ имеют клиент записи и владелец салона
func (s *Service) GetByID(ctx context.Context, appointmentID, requestorID int64) (*models.AppointmentInfo, error) {
	appt, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appt.UserID != requestorID && appt.OwnerID != requestorID {
		return nil, fmt.Errorf("%w: appointment_id=%d requestor=%d", ErrAccessDenied, appointmentID, requestorID)
	}

	return models.AppointmentInfoFromDomain(appt), nil
}

// GetUserAppointments возвращает записи пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, userID int64, status *domain.AppointmentStatus) ([]*models.AppointmentInfo, error) {
	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
	}

	appts, err := s.appointmentRepo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.log.Error("Failed to get appointments for user %d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get user appointments: %v", ErrInternal, err)
	}

	return models.AppointmentInfosFromDomain(appts), nil
}

// GetSalonAppointments возвращает записи салона с фильтром по дате и статусу
// Доступ имеет только владелец салона
func (s *Service) GetSalonAppointments(ctx context.Context, requestorID int64, filter domain.SalonAppointmentsFilter) ([]*models.AppointmentInfo, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *filter.Status)
	}

	salon, err := s.salonRepo.GetByID(ctx, filter.SalonID)
	if err != nil {
		if errors.Is(err, salonrepo.ErrSalonNotFound) {
			return nil, fmt.Errorf("%w: salon_id=%d", ErrSalonNotFound, filter.SalonID)
		}
		s.log.Error("Failed to get salon %d: %v", filter.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	if salon.OwnerID != requestorID {
		return nil, fmt.Errorf("%w: salon_id=%d requestor=%d", ErrAccessDenied, filter.SalonID, requestorID)
	}

	appts, err := s.appointmentRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get appointments for salon %d: %v", filter.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon appointments: %v", ErrInternal, err)
	}

	return models.AppointmentInfosFromDomain(appts), nil
}

// Cancel отменяет запись
// Клиент может отменить свою запись, владелец салона - любую запись салона.
// Отменить можно только активную запись
func (s *Service) Cancel(ctx context.Context, appointmentID, requestorID int64) (*models.AppointmentInfo, error) {
	return s.transition(ctx, appointmentID, requestorID, domain.StatusCancelled, false)
}

// UpdateStatus переводит запись в новый статус
// Доступно только владельцу салона; допустимость перехода проверяется
// по доменным правилам
func (s *Service) UpdateStatus(ctx context.Context, appointmentID, requestorID int64, status domain.AppointmentStatus) (*models.AppointmentInfo, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.transition(ctx, appointmentID, requestorID, status, true)
}

func (s *Service) transition(ctx context.Context, appointmentID, requestorID int64, next domain.AppointmentStatus, ownerOnly bool) (*models.AppointmentInfo, error) {
	appt, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	allowed := appt.OwnerID == requestorID
	if !ownerOnly {
		allowed = allowed || appt.UserID == requestorID
	}
	if !allowed {
		return nil, fmt.Errorf("%w: appointment_id=%d requestor=%d", ErrAccessDenied, appointmentID, requestorID)
	}

	if !appt.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, next)
	}

	// Обновление с guard по прочитанному статусу: если параллельный переход
	// успел раньше, проигравший запрос отклоняется, а не перетирает результат
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, appt.Status, next); err != nil {
		if errors.Is(err, apptrepo.ErrStatusChanged) {
			return nil, fmt.Errorf("%w: appointment %d was updated concurrently", ErrInvalidTransition, appointmentID)
		}
		s.log.Error("Failed to update status of appointment %d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.log.Info("Appointment %d: %s -> %s by user %d", appointmentID, appt.Status, next, requestorID)

	appt.Status = next
	return models.AppointmentInfoFromDomain(appt), nil
}

// GetUniqueCustomers возвращает всех клиентов салонов владельца
// Профили подтягиваются из UserService; при его недоступности клиент
// возвращается только с идентификатором
func (s *Service) GetUniqueCustomers(ctx context.Context, ownerID int64) ([]*models.CustomerInfo, error) {
	userIDs, err := s.appointmentRepo.GetDistinctUserIDsByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to get customer IDs for owner %d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: failed to get customers: %v", ErrInternal, err)
	}

	customers := make([]*models.CustomerInfo, 0, len(userIDs))
	for _, userID := range userIDs {
		profile, err := s.userClient.GetProfileWithGracefulDegradation(ctx, userID)
		if err != nil {
			if errors.Is(err, userservice.ErrUserNotFound) || errors.Is(err, userservice.ErrServiceDegraded) {
				customers = append(customers, models.CustomerInfoFromProfile(userID, nil))
				continue
			}
			s.log.Error("Failed to get profile for user %d: %v", userID, err)
			return nil, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
		}
		customers = append(customers, models.CustomerInfoFromProfile(userID, profile))
	}

	return customers, nil
}

// GetUserDashboard возвращает сводку записей пользователя
func (s *Service) GetUserDashboard(ctx context.Context, userID int64) (*models.UserDashboard, error) {
	appts, err := s.appointmentRepo.GetByUserID(ctx, userID, nil)
	if err != nil {
		s.log.Error("Failed to get appointments for user %d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get user appointments: %v", ErrInternal, err)
	}

	dashboard := &models.UserDashboard{Total: len(appts)}
	today := s.today()
	for _, a := range appts {
		switch a.Status {
		case domain.StatusBooked:
			if !a.Date.Before(today) {
				dashboard.Upcoming++
			}
		case domain.StatusCompleted:
			dashboard.Completed++
		case domain.StatusCancelled:
			dashboard.Cancelled++
		}
	}

	return dashboard, nil
}

// GetSalonDashboard возвращает сводку записей по всем салонам владельца
func (s *Service) GetSalonDashboard(ctx context.Context, ownerID int64) (*models.SalonDashboard, error) {
	appts, err := s.appointmentRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to get appointments for owner %d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: failed to get owner appointments: %v", ErrInternal, err)
	}

	dashboard := &models.SalonDashboard{Total: len(appts)}
	today := s.today()
	uniqueUsers := make(map[int64]struct{})
	for _, a := range appts {
		uniqueUsers[a.UserID] = struct{}{}
		switch a.Status {
		case domain.StatusBooked:
			if !a.Date.Before(today) {
				dashboard.Upcoming++
			}
		case domain.StatusCompleted:
			dashboard.Completed++
		case domain.StatusCancelled:
			dashboard.Cancelled++
		}
	}
	dashboard.UniqueCustomers = len(uniqueUsers)

	return dashboard, nil
}

// today возвращает текущую дату без компоненты времени
func (s *Service) today() time.Time {
	now := s.timeProvider.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) getAppointment(ctx context.Context, appointmentID int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptrepo.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: appointment_id=%d", ErrAppointmentNotFound, appointmentID)
		}
		s.log.Error("Failed to get appointment %d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}
	return appt, nil
}
