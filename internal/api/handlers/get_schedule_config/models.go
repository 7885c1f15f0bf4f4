package get_schedule_config

import "github.com/salonbook/salon-booking-service/internal/domain"

// Response конфигурация расписания в ответе API
type Response struct {
	WorkingDays         []string `json:"working_days"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	BreakStartTime      *string  `json:"break_start_time,omitempty"`
	BreakEndTime        *string  `json:"break_end_time,omitempty"`
	SlotDurationMinutes int      `json:"slot_duration_minutes"`
	MaxBookingsPerSlot  int      `json:"max_bookings_per_slot"`
}

// FromDomain конвертирует доменную конфигурацию в ответ API
func FromDomain(cfg *domain.ScheduleConfig) *Response {
	resp := &Response{
		WorkingDays:         cfg.WorkingDays,
		StartTime:           cfg.StartTime.String(),
		EndTime:             cfg.EndTime.String(),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		MaxBookingsPerSlot:  cfg.MaxBookingsPerSlot,
	}
	if cfg.BreakStartTime != nil {
		s := cfg.BreakStartTime.String()
		resp.BreakStartTime = &s
	}
	if cfg.BreakEndTime != nil {
		s := cfg.BreakEndTime.String()
		resp.BreakEndTime = &s
	}
	return resp
}
