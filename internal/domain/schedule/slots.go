package schedule

// TimeSlot is one candidate booking start time. Available starts true
// and is only ever flipped off by successive filter passes.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SlotWindow describes a working window to cut into a slot grid.
// BreakStart/BreakEnd empty means no break.
type SlotWindow struct {
	StartTime  string
	EndTime    string
	Duration   int
	BreakStart string
	BreakEnd   string
}

// GenerateTimeSlots produces the canonical grid of bookable start
// times for a window, stepping by Duration from StartTime.
//
// A slot is emitted only when it fits whole inside the window: the
// last valid slot may touch EndTime exactly, but never spills past it.
// With a break configured, slots starting inside [BreakStart, BreakEnd)
// are dropped, and so are slots that start before the break but would
// run into it. A slot starting exactly at BreakEnd is valid.
func GenerateTimeSlots(w SlotWindow) []TimeSlot {
	start := ParseTimeToMinutes(w.StartTime)
	end := ParseTimeToMinutes(w.EndTime)

	slots := []TimeSlot{}
	if w.Duration <= 0 || end <= start {
		return slots
	}

	hasBreak := w.BreakStart != "" && w.BreakEnd != ""
	var breakStart, breakEnd int
	if hasBreak {
		breakStart = ParseTimeToMinutes(w.BreakStart)
		breakEnd = ParseTimeToMinutes(w.BreakEnd)
	}

	for cur := start; cur+w.Duration <= end; cur += w.Duration {
		if hasBreak {
			if cur >= breakStart && cur < breakEnd {
				continue
			}
			// straddling the break is as bad as starting inside it
			if cur < breakStart && cur+w.Duration > breakStart {
				continue
			}
		}

		slots = append(slots, TimeSlot{
			Time:      MinutesToTime(cur),
			Available: true,
		})
	}

	return slots
}
