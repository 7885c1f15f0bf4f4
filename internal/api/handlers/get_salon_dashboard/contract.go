package get_salon_dashboard

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса записей
type AppointmentsService interface {
	GetSalonDashboard(ctx context.Context, ownerID int64) (*models.SalonDashboard, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
