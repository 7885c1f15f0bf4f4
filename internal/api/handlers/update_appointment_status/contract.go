package update_appointment_status

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса записей
type AppointmentsService interface {
	UpdateStatus(ctx context.Context, appointmentID, requestorID int64, status domain.AppointmentStatus) (*models.AppointmentInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
