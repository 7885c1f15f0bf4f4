package domain

import (
	"time"

	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Slot is a bookable (date, time) unit derived from a schedule config.
// Slots are never persisted; identity is structural (same date and time
// mean the same slot) and the set is regenerated for every query.
type Slot struct {
	StartTime         types.TimeString
	DurationMinutes   int
	RemainingCapacity int
	TotalCapacity     int
}

// IsFull returns true if the slot has no remaining capacity
func (s *Slot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// BuildSlotTimes generates the ordered slot start times for a calendar date.
// Returns an empty sequence when the date's weekday is not a working day.
// Emission starts at StartTime and advances by the slot duration while the
// start stays strictly before EndTime.
//
// Break policy: slots with breakStart <= t < breakEnd are excluded; a slot
// starting exactly at breakEnd is kept.
//
// The function is pure and accepts any date, including past ones; filtering
// past dates is the caller's concern.
func BuildSlotTimes(cfg *ScheduleConfig, date time.Time) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if !cfg.IsWorkingDay(date.Weekday()) {
		return slots
	}

	current := cfg.StartTime
	for current.IsBefore(cfg.EndTime) {
		if !inBreakWindow(cfg, current) {
			slots = append(slots, current)
		}

		next, err := current.AddMinutes(cfg.SlotDurationMinutes)
		if err != nil {
			// шаг вышел за пределы суток
			break
		}
		current = next
	}

	return slots
}

func inBreakWindow(cfg *ScheduleConfig, t types.TimeString) bool {
	if !cfg.HasBreak() {
		return false
	}
	return !t.IsBefore(*cfg.BreakStartTime) && t.IsBefore(*cfg.BreakEndTime)
}
