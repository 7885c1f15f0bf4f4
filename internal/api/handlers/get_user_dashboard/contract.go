package get_user_dashboard

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса записей
type AppointmentsService interface {
	GetUserDashboard(ctx context.Context, userID int64) (*models.UserDashboard, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
