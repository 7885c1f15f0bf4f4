package get_salon_appointments

import (
	"context"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса записей
type AppointmentsService interface {
	GetSalonAppointments(ctx context.Context, requestorID int64, filter domain.SalonAppointmentsFilter) ([]*models.AppointmentInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}
