package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/pkg/ptr"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// 2026-08-31 is a Monday
var (
	monday  = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
)

func TestBuildSlotTimes(t *testing.T) {
	cfg := &ScheduleConfig{
		WorkingDays:         []string{"monday"},
		StartTime:           "09:00",
		EndTime:             "11:00",
		SlotDurationMinutes: 30,
		MaxBookingsPerSlot:  1,
	}

	slots := BuildSlotTimes(cfg, monday)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestBuildSlotTimes_NonWorkingDay(t *testing.T) {
	cfg := &ScheduleConfig{
		WorkingDays:         []string{"monday"},
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 60,
		MaxBookingsPerSlot:  1,
	}

	slots := BuildSlotTimes(cfg, tuesday)
	assert.Empty(t, slots)
}

func TestBuildSlotTimes_BreakWindow(t *testing.T) {
	cfg := &ScheduleConfig{
		WorkingDays:         []string{"monday"},
		StartTime:           "09:00",
		EndTime:             "17:00",
		BreakStartTime:      ptr.Ptr(types.TimeString("12:00")),
		BreakEndTime:        ptr.Ptr(types.TimeString("13:00")),
		SlotDurationMinutes: 60,
		MaxBookingsPerSlot:  1,
	}

	slots := BuildSlotTimes(cfg, monday)

	// слот в 12:00 выпадает на перерыв, слот ровно в его конце остаётся
	assert.NotContains(t, slots, types.TimeString("12:00"))
	assert.Contains(t, slots, types.TimeString("13:00"))
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}, slots)
}

func TestBuildSlotTimes_SlotCountMatchesWindow(t *testing.T) {
	cfg := &ScheduleConfig{
		WorkingDays:         []string{"monday"},
		StartTime:           "10:00",
		EndTime:             "16:00",
		SlotDurationMinutes: 45,
		MaxBookingsPerSlot:  1,
	}

	slots := BuildSlotTimes(cfg, monday)

	// окно 360 минут, шаг 45: стартов строго до 16:00 ровно 8
	require.Len(t, slots, 8)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("15:15"), slots[len(slots)-1])

	// последний слот начинается до конца окна
	assert.True(t, slots[len(slots)-1].IsBefore(cfg.EndTime))
}

func TestBuildSlotTimes_LateWindowStopsAtMidnight(t *testing.T) {
	cfg := &ScheduleConfig{
		WorkingDays:         []string{"monday"},
		StartTime:           "23:00",
		EndTime:             "23:59",
		SlotDurationMinutes: 30,
		MaxBookingsPerSlot:  1,
	}

	slots := BuildSlotTimes(cfg, monday)
	assert.Equal(t, []types.TimeString{"23:00", "23:30"}, slots)
}
