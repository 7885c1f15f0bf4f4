package get_available_slots

import (
	"fmt"
	"time"
)

func (uc *UseCase) validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salon_id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	// Слоты за прошедшие даты не выдаём
	// "Сегодня" считается по календарной дате локального времени, не по UTC
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	reqDate := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
	if reqDate.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, req.Date.Format("2006-01-02"))
	}

	return nil
}
