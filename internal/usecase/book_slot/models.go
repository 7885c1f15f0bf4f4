package book_slot

import (
	"time"

	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Request запрос на бронирование слота
type Request struct {
	SalonID   int64
	UserID    int64
	Date      time.Time
	StartTime types.TimeString
}

// Response результат успешного бронирования
type Response struct {
	AppointmentID int64  `json:"appointment_id"`
	SalonID       int64  `json:"salon_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
