package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotTimes(slots []TimeSlot) []string {
	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}
	return times
}

func TestGenerateTimeSlots_SplitsAroundBreak(t *testing.T) {
	slots := GenerateTimeSlots(SlotWindow{
		StartTime:  "11:00",
		EndTime:    "14:00",
		Duration:   60,
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	})

	assert.Equal(t, []string{"11:00", "13:00"}, slotTimes(slots))
}

func TestGenerateTimeSlots_RejectsBreakStraddle(t *testing.T) {
	// the only candidate, 11:00-12:30, runs into the break
	slots := GenerateTimeSlots(SlotWindow{
		StartTime:  "11:00",
		EndTime:    "13:00",
		Duration:   90,
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	})

	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_LastSlotMayTouchClose(t *testing.T) {
	slots := GenerateTimeSlots(SlotWindow{
		StartTime: "09:00",
		EndTime:   "10:30",
		Duration:  30,
	})

	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotTimes(slots))
}

func TestGenerateTimeSlots_NeverSpillsPastClose(t *testing.T) {
	slots := GenerateTimeSlots(SlotWindow{
		StartTime: "09:00",
		EndTime:   "10:20",
		Duration:  30,
	})

	// 10:00-10:30 would spill past 10:20
	assert.Equal(t, []string{"09:00", "09:30"}, slotTimes(slots))
}

func TestGenerateTimeSlots_EmptyWindow(t *testing.T) {
	assert.Empty(t, GenerateTimeSlots(SlotWindow{StartTime: "10:00", EndTime: "10:00", Duration: 30}))
	assert.Empty(t, GenerateTimeSlots(SlotWindow{StartTime: "14:00", EndTime: "10:00", Duration: 30}))
	assert.Empty(t, GenerateTimeSlots(SlotWindow{StartTime: "09:00", EndTime: "18:00", Duration: 0}))
}

func TestGenerateTimeSlots_GridProperties(t *testing.T) {
	w := SlotWindow{
		StartTime:  "08:00",
		EndTime:    "19:00",
		Duration:   45,
		BreakStart: "12:15",
		BreakEnd:   "13:30",
	}
	slots := GenerateTimeSlots(w)
	require.NotEmpty(t, slots)

	start := ParseTimeToMinutes(w.StartTime)
	end := ParseTimeToMinutes(w.EndTime)
	breakStart := ParseTimeToMinutes(w.BreakStart)
	breakEnd := ParseTimeToMinutes(w.BreakEnd)

	prev := -1
	for _, s := range slots {
		cur := ParseTimeToMinutes(s.Time)

		assert.GreaterOrEqual(t, cur, start, "slot before window start")
		assert.LessOrEqual(t, cur+w.Duration, end, "slot spills past window end")
		assert.False(t, cur >= breakStart && cur < breakEnd, "slot %s starts inside break", s.Time)
		assert.Greater(t, cur, prev, "slots not strictly ascending")
		assert.True(t, s.Available, "generated slots start available")

		prev = cur
	}
}

func TestGenerateTimeSlots_SlotMayTouchBreakEnd(t *testing.T) {
	slots := GenerateTimeSlots(SlotWindow{
		StartTime:  "09:00",
		EndTime:    "18:00",
		Duration:   60,
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	})

	assert.Contains(t, slotTimes(slots), "13:00")
	assert.NotContains(t, slotTimes(slots), "12:00")
}
