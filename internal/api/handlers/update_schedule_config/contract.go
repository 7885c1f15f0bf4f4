package update_schedule_config

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/domain"
)

// ScheduleService интерфейс сервиса расписаний
type ScheduleService interface {
	Replace(ctx context.Context, salonID, requestorID int64, cfg *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
