package schedule

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
	ReplaceScheduleConfig(ctx context.Context, salonID int64, cfg *domain.ScheduleConfig) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
