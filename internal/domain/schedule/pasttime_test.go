package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studio-navalha/agenda-api/internal/timezone"
)

func withFixedNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = prev })
}

func TestFilterPastSlots_OtherDayIsUntouched(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 10, 15, 0, 0, 0, timezone.Location()))

	slots := []TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "16:00", Available: true},
	}

	got := FilterPastSlots(slots, "2026-03-11")

	for _, s := range got {
		assert.True(t, s.Available)
	}
}

func TestFilterPastSlots_TodayCutsElapsedSlots(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 10, 10, 30, 0, 0, timezone.Location()))

	slots := []TimeSlot{
		{Time: "10:00", Available: true},
		{Time: "10:30", Available: true},
		{Time: "10:31", Available: true},
		{Time: "11:00", Available: true},
	}

	got := FilterPastSlots(slots, "2026-03-10")

	assert.False(t, got[0].Available)
	assert.False(t, got[1].Available, "a slot starting exactly now is already past")
	assert.True(t, got[2].Available)
	assert.True(t, got[3].Available)
}

func TestFilterPastSlots_MidnightBoundary(t *testing.T) {
	// 23:59 on the 9th: the 10th is not today yet
	withFixedNow(t, time.Date(2026, 3, 9, 23, 59, 0, 0, timezone.Location()))

	slots := []TimeSlot{{Time: "00:00", Available: true}}
	got := FilterPastSlots(slots, "2026-03-10")

	assert.True(t, got[0].Available)
}
