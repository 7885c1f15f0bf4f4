package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/pkg/ptr"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

func validConfig() ScheduleConfig {
	return ScheduleConfig{
		WorkingDays:         []string{"monday", "wednesday", "friday"},
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 30,
		MaxBookingsPerSlot:  2,
	}
}

func TestScheduleConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ScheduleConfig)
		valid  bool
	}{
		{
			name:   "valid without break",
			mutate: func(c *ScheduleConfig) {},
			valid:  true,
		},
		{
			name: "valid with break",
			mutate: func(c *ScheduleConfig) {
				c.BreakStartTime = ptr.Ptr(types.TimeString("12:00"))
				c.BreakEndTime = ptr.Ptr(types.TimeString("13:00"))
			},
			valid: true,
		},
		{
			name:   "empty working days",
			mutate: func(c *ScheduleConfig) { c.WorkingDays = nil },
		},
		{
			name:   "unknown weekday",
			mutate: func(c *ScheduleConfig) { c.WorkingDays = []string{"someday"} },
		},
		{
			name:   "malformed start time",
			mutate: func(c *ScheduleConfig) { c.StartTime = "9am" },
		},
		{
			name:   "start equals end",
			mutate: func(c *ScheduleConfig) { c.EndTime = c.StartTime },
		},
		{
			name:   "start after end",
			mutate: func(c *ScheduleConfig) { c.StartTime = "18:00" },
		},
		{
			name: "break start without break end",
			mutate: func(c *ScheduleConfig) {
				c.BreakStartTime = ptr.Ptr(types.TimeString("12:00"))
			},
		},
		{
			name: "break end without break start",
			mutate: func(c *ScheduleConfig) {
				c.BreakEndTime = ptr.Ptr(types.TimeString("13:00"))
			},
		},
		{
			name: "break outside working hours",
			mutate: func(c *ScheduleConfig) {
				c.BreakStartTime = ptr.Ptr(types.TimeString("08:00"))
				c.BreakEndTime = ptr.Ptr(types.TimeString("10:00"))
			},
		},
		{
			name: "break start after break end",
			mutate: func(c *ScheduleConfig) {
				c.BreakStartTime = ptr.Ptr(types.TimeString("14:00"))
				c.BreakEndTime = ptr.Ptr(types.TimeString("13:00"))
			},
		},
		{
			name:   "slot duration too small",
			mutate: func(c *ScheduleConfig) { c.SlotDurationMinutes = 1 },
		},
		{
			name:   "slot duration too large",
			mutate: func(c *ScheduleConfig) { c.SlotDurationMinutes = 600 },
		},
		{
			name:   "zero capacity",
			mutate: func(c *ScheduleConfig) { c.MaxBookingsPerSlot = 0 },
		},
		{
			name:   "capacity above cap",
			mutate: func(c *ScheduleConfig) { c.MaxBookingsPerSlot = 101 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.valid {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
			}
		})
	}
}

func TestScheduleConfig_IsWorkingDay(t *testing.T) {
	cfg := validConfig()

	assert.True(t, cfg.IsWorkingDay(time.Monday))
	assert.True(t, cfg.IsWorkingDay(time.Friday))
	assert.False(t, cfg.IsWorkingDay(time.Tuesday))
	assert.False(t, cfg.IsWorkingDay(time.Sunday))

	// регистр не важен
	cfg.WorkingDays = []string{"Saturday"}
	assert.True(t, cfg.IsWorkingDay(time.Saturday))
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	booked := &Appointment{Status: StatusBooked}
	assert.True(t, booked.CanTransitionTo(StatusCancelled))
	assert.True(t, booked.CanTransitionTo(StatusCompleted))
	assert.False(t, booked.CanTransitionTo(StatusBooked))

	// терминальные статусы
	completed := &Appointment{Status: StatusCompleted}
	assert.False(t, completed.CanTransitionTo(StatusCancelled))
	assert.False(t, completed.CanTransitionTo(StatusBooked))

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.CanTransitionTo(StatusCompleted))
	assert.False(t, cancelled.CanTransitionTo(StatusBooked))
}
