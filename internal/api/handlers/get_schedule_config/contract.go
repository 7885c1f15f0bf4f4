package get_schedule_config

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/domain"
)

// ScheduleService интерфейс сервиса расписаний
type ScheduleService interface {
	Get(ctx context.Context, salonID int64) (*domain.ScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
