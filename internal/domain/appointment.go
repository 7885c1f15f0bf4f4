package domain

import (
	"time"

	"github.com/salonbook/salon-booking-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	return s == StatusBooked || s == StatusCompleted || s == StatusCancelled
}

// Appointment represents a booked slot in a salon's schedule.
// SalonID, UserID, Date and StartTime are immutable after creation;
// only Status may change, via the allowed transitions.
type Appointment struct {
	ID      int64
	SalonID int64
	UserID  int64
	OwnerID int64 // denormalized salon owner, for owner-side listings

	Date      time.Time // calendar date of the slot
	StartTime types.TimeString
	Status    AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBooked returns true if the appointment currently consumes slot capacity
func (a *Appointment) IsBooked() bool {
	return a.Status == StatusBooked
}

// CanTransitionTo reports whether the status change is allowed.
// Allowed transitions: booked -> cancelled, booked -> completed.
// Cancelled and completed are terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status != StatusBooked {
		return false
	}
	return next == StatusCancelled || next == StatusCompleted
}

// SalonAppointmentsFilter фильтр для получения записей салона
type SalonAppointmentsFilter struct {
	SalonID    int64
	Date       *time.Time         // конкретная дата (опционально)
	Status     *AppointmentStatus // фильтр по статусу (опционально)
	OnlyBooked bool               // только записи со статусом booked
}
