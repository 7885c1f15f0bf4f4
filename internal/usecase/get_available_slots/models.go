package get_available_slots

import (
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
)

// Request запрос на получение доступных слотов
type Request struct {
	SalonID int64
	Date    time.Time
}

// Response ответ со списком слотов на дату
type Response struct {
	SalonID int64         `json:"salon_id"`
	Date    string        `json:"date"`
	Slots   []domain.Slot `json:"slots"`
}
