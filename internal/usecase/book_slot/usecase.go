package book_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
	salonrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/salon"
	"github.com/salonbook/salon-booking-service/pkg/txmanager"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// UseCase бронирование слота с контролем вместимости
type UseCase struct {
	salonRepo       SalonRepository
	appointmentRepo AppointmentRepository
	txManager       TxManager
	timeProvider    TimeProvider
	log             Logger
}

// New создает новый экземпляр UseCase
func New(
	salonRepo SalonRepository,
	appointmentRepo AppointmentRepository,
	txManager TxManager,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		salonRepo:       salonRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		log:             log,
	}
}

// Execute выполняет бронирование слота
//
// Конфигурация расписания читается один раз до транзакции и используется
// как неизменяемый снимок: параллельная смена расписания не влияет на
// уже начатую проверку. Подсчёт занятости и вставка записи выполняются
// в одной SERIALIZABLE транзакции; при исчерпании повторов возвращается
// ErrTransientFailure, и клиент может повторить запрос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonrepo.ErrSalonNotFound) {
			return nil, fmt.Errorf("%w: salon_id=%d", ErrSalonNotFound, req.SalonID)
		}
		uc.log.Error("Failed to get salon %d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	if !salon.AcceptsBookings() {
		return nil, fmt.Errorf("%w: salon_id=%d", ErrSalonInactive, req.SalonID)
	}

	if !isValidSlotStart(&salon.Schedule, req.Date, req.StartTime) {
		return nil, fmt.Errorf("%w: %s %s", ErrInvalidSlot, req.Date.Format(domain.DateFormat), req.StartTime)
	}

	appt := &domain.Appointment{
		SalonID:   req.SalonID,
		UserID:    req.UserID,
		OwnerID:   salon.OwnerID,
		Date:      truncateToDate(req.Date),
		StartTime: req.StartTime,
		Status:    domain.StatusBooked,
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := uc.appointmentRepo.CountBookedForSlot(txCtx, req.SalonID, appt.Date, req.StartTime)
		if err != nil {
			// конфликт сериализации может случиться на любом запросе,
			// не только на коммите: отдаём ошибку менеджеру для повтора
			if txmanager.IsRetryable(err) {
				return err
			}
			return fmt.Errorf("%w: failed to count slot bookings: %v", ErrInternal, err)
		}

		if count >= salon.Schedule.MaxBookingsPerSlot {
			return fmt.Errorf("%w: %d of %d taken", ErrSlotFull, count, salon.Schedule.MaxBookingsPerSlot)
		}

		if _, err := uc.appointmentRepo.Create(txCtx, appt); err != nil {
			if txmanager.IsRetryable(err) {
				return err
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrRetriesExhausted) {
			uc.log.Warn("Booking conflict retries exhausted: salon=%d date=%s time=%s",
				req.SalonID, appt.Date.Format(domain.DateFormat), req.StartTime)
			return nil, fmt.Errorf("%w: %v", ErrTransientFailure, err)
		}
		if errors.Is(err, ErrSlotFull) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.log.Error("Booking transaction failed: salon=%d user=%d: %v", req.SalonID, req.UserID, err)
		return nil, fmt.Errorf("%w: booking transaction failed: %v", ErrInternal, err)
	}

	uc.log.Info("Appointment %d created: salon=%d user=%d date=%s time=%s",
		appt.ID, req.SalonID, req.UserID, appt.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		AppointmentID: appt.ID,
		SalonID:       appt.SalonID,
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime.String(),
		Status:        string(appt.Status),
		CreatedAt:     appt.CreatedAt.Format(time.RFC3339),
	}, nil
}

// isValidSlotStart проверяет, что время входит в сетку слотов на дату
func isValidSlotStart(cfg *domain.ScheduleConfig, date time.Time, start types.TimeString) bool {
	for _, t := range domain.BuildSlotTimes(cfg, date) {
		if t.Equal(start) {
			return true
		}
	}
	return false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
