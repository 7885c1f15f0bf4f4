package get_available_slots

import (
	uc "github.com/salonbook/salon-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse слот в ответе API
type SlotResponse struct {
	StartTime         string `json:"start_time"`
	DurationMinutes   int    `json:"duration_minutes"`
	RemainingCapacity int    `json:"remaining_capacity"`
	TotalCapacity     int    `json:"total_capacity"`
}

// Response ответ со списком слотов
type Response struct {
	SalonID int64          `json:"salon_id"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

func toResponse(res *uc.Response) *Response {
	out := &Response{
		SalonID: res.SalonID,
		Date:    res.Date,
		Slots:   make([]SlotResponse, 0, len(res.Slots)),
	}
	for _, s := range res.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime:         s.StartTime.String(),
			DurationMinutes:   s.DurationMinutes,
			RemainingCapacity: s.RemainingCapacity,
			TotalCapacity:     s.TotalCapacity,
		})
	}
	return out
}
