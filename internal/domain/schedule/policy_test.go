package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func openShop() *ShopHours {
	return &ShopHours{
		IsOpen:     true,
		StartTime:  "09:00",
		EndTime:    "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}
}

func TestShopSlotBlock_AllowsTouchingBreakEnd(t *testing.T) {
	got := ShopSlotBlock(ShopSlotCheck{
		SlotStartTime:   "13:00",
		DurationMinutes: 30,
		Hours:           openShop(),
	})

	assert.Equal(t, BlockNone, got)
}

func TestShopSlotBlock_ClosedStates(t *testing.T) {
	tests := []struct {
		name  string
		check ShopSlotCheck
	}{
		{"no hours record", ShopSlotCheck{SlotStartTime: "10:00", DurationMinutes: 30}},
		{"closed weekday", ShopSlotCheck{
			SlotStartTime: "10:00", DurationMinutes: 30,
			Hours: &ShopHours{IsOpen: false, StartTime: "09:00", EndTime: "18:00"},
		}},
		{"nil times", ShopSlotCheck{
			SlotStartTime: "10:00", DurationMinutes: 30,
			Hours: &ShopHours{IsOpen: true},
		}},
		{"before opening", ShopSlotCheck{
			SlotStartTime: "08:30", DurationMinutes: 30, Hours: openShop(),
		}},
		{"spills past closing", ShopSlotCheck{
			SlotStartTime: "17:45", DurationMinutes: 30, Hours: openShop(),
		}},
		{"overlaps shop break", ShopSlotCheck{
			SlotStartTime: "11:45", DurationMinutes: 30, Hours: openShop(),
		}},
		{"full-day closure", ShopSlotCheck{
			SlotStartTime: "10:00", DurationMinutes: 30, Hours: openShop(),
			Closures: []DayWindow{{Date: "2026-03-10"}},
		}},
		{"partial closure overlap", ShopSlotCheck{
			SlotStartTime: "10:00", DurationMinutes: 30, Hours: openShop(),
			Closures: []DayWindow{{
				Date:    "2026-03-10",
				Partial: &Window{StartTime: "10:15", EndTime: "11:00"},
			}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, BlockShopClosed, ShopSlotBlock(tt.check))
		})
	}
}

func TestShopSlotBlock_PartialClosureTouchingIsAllowed(t *testing.T) {
	got := ShopSlotBlock(ShopSlotCheck{
		SlotStartTime:   "10:00",
		DurationMinutes: 30,
		Hours:           openShop(),
		Closures: []DayWindow{{
			Date:    "2026-03-10",
			Partial: &Window{StartTime: "10:30", EndTime: "11:00"},
		}},
	})

	assert.Equal(t, BlockNone, got)
}

func TestAbsenceSlotBlock(t *testing.T) {
	fullDay := []DayWindow{{Date: "2026-03-10"}}
	assert.Equal(t, BlockBarberUnavailable, AbsenceSlotBlock("10:00", 30, fullDay))

	partial := []DayWindow{{
		Date:    "2026-03-10",
		Partial: &Window{StartTime: "14:00", EndTime: "16:00"},
	}}
	assert.Equal(t, BlockBarberUnavailable, AbsenceSlotBlock("15:30", 60, partial))
	assert.Equal(t, BlockNone, AbsenceSlotBlock("10:00", 30, partial))
	assert.Equal(t, BlockNone, AbsenceSlotBlock("13:00", 60, partial), "touching absence start is allowed")

	assert.Equal(t, BlockNone, AbsenceSlotBlock("10:00", 30, nil))
}

func TestWorkingHoursSlotBlock_CapabilityVsPosition(t *testing.T) {
	check := WorkingHoursSlotCheck{
		WorkingStartTime: "11:00",
		WorkingEndTime:   "14:00",
		BreakStart:       "12:00",
		BreakEnd:         "13:00",
		DurationMinutes:  30,
	}

	// outside the working window entirely: a capability mismatch
	check.StartTime = "09:00"
	assert.Equal(t, BlockBarberUnavailable, WorkingHoursSlotBlock(check))

	check.StartTime = "13:45"
	assert.Equal(t, BlockBarberUnavailable, WorkingHoursSlotBlock(check),
		"slot spilling past the window is a capability mismatch")

	// inside the window but landing in the break: a positional mismatch
	check.StartTime = "12:00"
	assert.Equal(t, BlockSlotUnavailable, WorkingHoursSlotBlock(check))

	// inside the window but off the generator's grid
	check.StartTime = "11:10"
	assert.Equal(t, BlockSlotUnavailable, WorkingHoursSlotBlock(check))

	check.StartTime = "11:30"
	assert.Equal(t, BlockNone, WorkingHoursSlotBlock(check))
}

func TestFilterAvailableSlots_ConfirmedOverlaps(t *testing.T) {
	slots := []TimeSlot{
		{Time: "10:00", Available: true},
		{Time: "10:30", Available: true},
		{Time: "11:00", Available: true},
		{Time: "11:30", Available: true},
	}
	appointments := []ExistingAppointment{
		{StartTime: "10:30", EndTime: "11:30", Status: "CONFIRMED"},
	}

	got := FilterAvailableSlots(slots, appointments, 60)

	want := []bool{false, false, false, true}
	for i, s := range got {
		assert.Equal(t, want[i], s.Available, "slot %s", s.Time)
	}
}

func TestFilterAvailableSlots_OnlyConfirmedBlocks(t *testing.T) {
	for _, status := range []string{"CANCELLED", "COMPLETED", "NO_SHOW", "pending", ""} {
		slots := []TimeSlot{{Time: "10:00", Available: true}}
		appointments := []ExistingAppointment{
			{StartTime: "10:00", EndTime: "11:00", Status: status},
		}

		got := FilterAvailableSlots(slots, appointments, 60)
		assert.True(t, got[0].Available, "status %q must not block", status)
	}
}

func TestFilterAvailableSlots_PointProbeWithoutDuration(t *testing.T) {
	slots := []TimeSlot{
		{Time: "10:00", Available: true},
		{Time: "10:30", Available: true},
	}
	appointments := []ExistingAppointment{
		{StartTime: "10:15", EndTime: "10:45", Status: "CONFIRMED"},
	}

	// zero duration degrades to a one-minute probe at the slot start
	got := FilterAvailableSlots(slots, appointments, 0)

	assert.True(t, got[0].Available)
	assert.False(t, got[1].Available)
}

func TestFilterAvailableSlots_NeverReenables(t *testing.T) {
	slots := []TimeSlot{{Time: "10:00", Available: false}}

	got := FilterAvailableSlots(slots, nil, 60)
	assert.False(t, got[0].Available)
}

func TestFilterAvailableSlots_Idempotent(t *testing.T) {
	slots := []TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: true},
		{Time: "10:00", Available: true},
	}
	appointments := []ExistingAppointment{
		{StartTime: "09:30", EndTime: "10:00", Status: "CONFIRMED"},
	}

	once := FilterAvailableSlots(slots, appointments, 30)
	snapshot := make([]bool, len(once))
	for i, s := range once {
		snapshot[i] = s.Available
	}

	twice := FilterAvailableSlots(once, appointments, 30)
	for i, s := range twice {
		assert.Equal(t, snapshot[i], s.Available)
	}
}
