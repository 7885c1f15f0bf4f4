package cancel_appointment

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса записей
type AppointmentsService interface {
	Cancel(ctx context.Context, appointmentID, requestorID int64) (*models.AppointmentInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
