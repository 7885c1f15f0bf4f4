package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonbook/salon-booking-service/internal/domain"
	salonrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/salon"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// UseCase расчет доступных слотов салона на дату
type UseCase struct {
	salonRepo       SalonRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	log             Logger
}

// New создает новый экземпляр UseCase
func New(
	salonRepo SalonRepository,
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		salonRepo:       salonRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		log:             log,
	}
}

// Execute возвращает слоты салона на дату с остаточной вместимостью.
// Слоты строятся из конфигурации расписания, затем из каждой вместимости
// вычитается число активных записей на точное время начала слота
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

	resp := &Response{
		SalonID: req.SalonID,
		Date:    req.Date.Format(domain.DateFormat),
		Slots:   []domain.Slot{},
	}

	slotTimes := domain.BuildSlotTimes(&salon.Schedule, req.Date)
	if len(slotTimes) == 0 {
		// Нерабочий день: слотов нет, это не ошибка
		uc.log.Debug("No slots for salon %d on %s: non-working day", req.SalonID, resp.Date)
		return resp, nil
	}

	booked, err := uc.appointmentRepo.GetBySalonWithFilter(ctx, domain.SalonAppointmentsFilter{
		SalonID:    req.SalonID,
		Date:       &req.Date,
		OnlyBooked: true,
	})
	if err != nil {
		uc.log.Error("Failed to get appointments for salon %d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	bookedCount := countByStartTime(booked)

	for _, start := range slotTimes {
		remaining := salon.Schedule.MaxBookingsPerSlot - bookedCount[start]
		if remaining < 0 {
			remaining = 0
		}

		resp.Slots = append(resp.Slots, domain.Slot{
			StartTime:         start,
			DurationMinutes:   salon.Schedule.SlotDurationMinutes,
			RemainingCapacity: remaining,
			TotalCapacity:     salon.Schedule.MaxBookingsPerSlot,
		})
	}

	return resp, nil
}

// countByStartTime группирует активные записи по времени начала слота
func countByStartTime(appointments []*domain.Appointment) map[types.TimeString]int {
	counts := make(map[types.TimeString]int, len(appointments))
	for _, a := range appointments {
		counts[a.StartTime]++
	}
	return counts
}
