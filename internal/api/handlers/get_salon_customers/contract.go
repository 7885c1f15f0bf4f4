package get_salon_customers

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса записей
type AppointmentsService interface {
	GetUniqueCustomers(ctx context.Context, ownerID int64) ([]*models.CustomerInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
