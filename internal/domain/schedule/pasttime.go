package schedule

import "github.com/studio-navalha/agenda-api/internal/timezone"

// nowFunc is the only place this package reads the wall clock.
// Tests swap it for a fixed instant.
var nowFunc = timezone.Now

// FilterPastSlots marks slots that already elapsed today as
// unavailable. For any date other than today in the business timezone
// it returns the slice untouched.
//
// A slot starting exactly on the current minute counts as past:
// same-minute bookings are not accepted.
func FilterPastSlots(slots []TimeSlot, date string) []TimeSlot {
	now := nowFunc()
	if date != FormatDate(now) {
		return slots
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	for i := range slots {
		if ParseTimeToMinutes(slots[i].Time) <= nowMinutes {
			slots[i].Available = false
		}
	}

	return slots
}
