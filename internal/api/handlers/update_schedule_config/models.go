package update_schedule_config

import (
	"fmt"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Request полная конфигурация расписания
// Частичные обновления не поддерживаются
type Request struct {
	WorkingDays         []string `json:"working_days"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	BreakStartTime      *string  `json:"break_start_time,omitempty"`
	BreakEndTime        *string  `json:"break_end_time,omitempty"`
	SlotDurationMinutes int      `json:"slot_duration_minutes"`
	MaxBookingsPerSlot  int      `json:"max_bookings_per_slot"`
}

// ToDomain конвертирует запрос в доменную конфигурацию
// Семантическая валидация выполняется на уровне домена; здесь только
// разбор форматов времени
func (r *Request) ToDomain() (*domain.ScheduleConfig, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start_time: %w", err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end_time: %w", err)
	}

	cfg := &domain.ScheduleConfig{
		WorkingDays:         r.WorkingDays,
		StartTime:           startTime,
		EndTime:             endTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		MaxBookingsPerSlot:  r.MaxBookingsPerSlot,
	}

	if r.BreakStartTime != nil {
		t, err := types.NewTimeStringFromString(*r.BreakStartTime)
		if err != nil {
			return nil, fmt.Errorf("break_start_time: %w", err)
		}
		cfg.BreakStartTime = &t
	}

	if r.BreakEndTime != nil {
		t, err := types.NewTimeStringFromString(*r.BreakEndTime)
		if err != nil {
			return nil, fmt.Errorf("break_end_time: %w", err)
		}
		cfg.BreakEndTime = &t
	}

	return cfg, nil
}
