package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/salonbook/salon-booking-service/pkg/types"
)

// ErrInvalidSchedule is returned when a schedule config fails validation
var ErrInvalidSchedule = errors.New("invalid schedule config")

// weekdayByName maps lowercase weekday names to time.Weekday
var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ScheduleConfig is a salon's recurring weekly availability template.
// It is owned by exactly one salon and replaced as a whole on update;
// the scheduling core only reads it.
type ScheduleConfig struct {
	WorkingDays         []string // lowercase weekday names, non-empty
	StartTime           types.TimeString
	EndTime             types.TimeString
	BreakStartTime      *types.TimeString // both break bounds set, or neither
	BreakEndTime        *types.TimeString
	SlotDurationMinutes int
	MaxBookingsPerSlot  int
}

// HasBreak returns true if a break window is configured
func (c *ScheduleConfig) HasBreak() bool {
	return c.BreakStartTime != nil && c.BreakEndTime != nil
}

// IsWorkingDay returns true if the salon works on the given weekday
func (c *ScheduleConfig) IsWorkingDay(day time.Weekday) bool {
	for _, name := range c.WorkingDays {
		if wd, ok := weekdayByName[strings.ToLower(name)]; ok && wd == day {
			return true
		}
	}
	return false
}

// Validate checks the schedule config invariants. It is called on every
// config write; a config that passed Validate never reaches booking logic
// in a malformed state.
func (c *ScheduleConfig) Validate() error {
	if len(c.WorkingDays) == 0 {
		return fmt.Errorf("%w: working days must not be empty", ErrInvalidSchedule)
	}
	for _, name := range c.WorkingDays {
		if _, ok := weekdayByName[strings.ToLower(name)]; !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, name)
		}
	}

	if err := c.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidSchedule, err)
	}
	if err := c.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidSchedule, err)
	}
	if !c.StartTime.IsBefore(c.EndTime) {
		return fmt.Errorf("%w: start time %s must be before end time %s", ErrInvalidSchedule, c.StartTime, c.EndTime)
	}

	// Break window: both bounds or neither
	if (c.BreakStartTime == nil) != (c.BreakEndTime == nil) {
		return fmt.Errorf("%w: break start and break end must be set together", ErrInvalidSchedule)
	}
	if c.HasBreak() {
		if err := c.BreakStartTime.Validate(); err != nil {
			return fmt.Errorf("%w: break start time: %v", ErrInvalidSchedule, err)
		}
		if err := c.BreakEndTime.Validate(); err != nil {
			return fmt.Errorf("%w: break end time: %v", ErrInvalidSchedule, err)
		}
		if !c.BreakStartTime.IsBefore(*c.BreakEndTime) {
			return fmt.Errorf("%w: break start %s must be before break end %s",
				ErrInvalidSchedule, *c.BreakStartTime, *c.BreakEndTime)
		}
		if c.BreakStartTime.IsBefore(c.StartTime) || c.BreakEndTime.IsAfter(c.EndTime) {
			return fmt.Errorf("%w: break window %s-%s must be within working hours %s-%s",
				ErrInvalidSchedule, *c.BreakStartTime, *c.BreakEndTime, c.StartTime, c.EndTime)
		}
	}

	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidSchedule, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if c.MaxBookingsPerSlot < MinBookingsPerSlot || c.MaxBookingsPerSlot > MaxBookingsPerSlotCap {
		return fmt.Errorf("%w: max bookings per slot must be between %d and %d",
			ErrInvalidSchedule, MinBookingsPerSlot, MaxBookingsPerSlotCap)
	}

	return nil
}
