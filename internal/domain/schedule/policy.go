package schedule

// BlockReason explains why a slot cannot be booked. The zero value
// means the slot is allowed. "Not available" is a normal return value
// here, never an error: the HTTP layer maps reasons straight onto
// status codes without exception-driven control flow.
type BlockReason string

const (
	BlockNone              BlockReason = ""
	BlockShopClosed        BlockReason = "SHOP_CLOSED"
	BlockBarberUnavailable BlockReason = "BARBER_UNAVAILABLE"
	BlockSlotUnavailable   BlockReason = "SLOT_UNAVAILABLE"
)

// Window is a partial-day time window.
type Window struct {
	StartTime string
	EndTime   string
}

// DayWindow is a dated exclusion: a shop closure or a barber absence.
// A nil Partial blocks the whole day. The nullable start/end pair the
// storage layer uses is converted to this form at the repository
// boundary so a half-set pair cannot leak in here.
type DayWindow struct {
	Date    string
	Partial *Window
}

// AllDay reports whether the exclusion covers the entire day.
func (w DayWindow) AllDay() bool {
	return w.Partial == nil
}

// ShopHours is the shop-wide working window for one weekday.
type ShopHours struct {
	IsOpen     bool
	StartTime  string
	EndTime    string
	BreakStart string
	BreakEnd   string
}

// ShopSlotCheck are the inputs for the shop policy decision.
type ShopSlotCheck struct {
	SlotStartTime   string
	DurationMinutes int
	Hours           *ShopHours
	Closures        []DayWindow
}

// ShopSlotBlock decides whether shop policy blocks a slot: the shop
// must be open that weekday, the slot must sit inside the open window,
// clear the shop break, and clear every closure registered for the day.
func ShopSlotBlock(in ShopSlotCheck) BlockReason {
	h := in.Hours
	if h == nil || !h.IsOpen || h.StartTime == "" || h.EndTime == "" {
		return BlockShopClosed
	}

	slot := SlotRange(in.SlotStartTime, in.DurationMinutes)

	if !RangeWithin(slot, NewRange(h.StartTime, h.EndTime)) {
		return BlockShopClosed
	}

	if h.BreakStart != "" && h.BreakEnd != "" &&
		RangesOverlap(slot, NewRange(h.BreakStart, h.BreakEnd)) {
		return BlockShopClosed
	}

	for _, c := range in.Closures {
		if c.AllDay() {
			return BlockShopClosed
		}
		if RangesOverlap(slot, NewRange(c.Partial.StartTime, c.Partial.EndTime)) {
			return BlockShopClosed
		}
	}

	return BlockNone
}

// AbsenceSlotBlock decides whether a barber's absences block a slot.
func AbsenceSlotBlock(slotStartTime string, durationMinutes int, absences []DayWindow) BlockReason {
	slot := SlotRange(slotStartTime, durationMinutes)

	for _, a := range absences {
		if a.AllDay() {
			return BlockBarberUnavailable
		}
		if RangesOverlap(slot, NewRange(a.Partial.StartTime, a.Partial.EndTime)) {
			return BlockBarberUnavailable
		}
	}

	return BlockNone
}

// WorkingHoursSlotCheck are the inputs for the working-hours decision.
type WorkingHoursSlotCheck struct {
	WorkingStartTime string
	WorkingEndTime   string
	BreakStart       string
	BreakEnd         string
	StartTime        string
	DurationMinutes  int
}

// WorkingHoursSlotBlock decides whether a requested start time is
// bookable against the barber's working window.
//
// The two failure modes are distinct on purpose. A slot outside the
// working window is a capability problem (BARBER_UNAVAILABLE); a slot
// inside the window that is not a position the generator would emit,
// because it is off-grid or crosses the break, is a positional problem
// (SLOT_UNAVAILABLE). Callers show different messages for each.
func WorkingHoursSlotBlock(in WorkingHoursSlotCheck) BlockReason {
	slot := SlotRange(in.StartTime, in.DurationMinutes)

	if !RangeWithin(slot, NewRange(in.WorkingStartTime, in.WorkingEndTime)) {
		return BlockBarberUnavailable
	}

	grid := GenerateTimeSlots(SlotWindow{
		StartTime:  in.WorkingStartTime,
		EndTime:    in.WorkingEndTime,
		Duration:   in.DurationMinutes,
		BreakStart: in.BreakStart,
		BreakEnd:   in.BreakEnd,
	})
	for _, s := range grid {
		if s.Time == in.StartTime {
			return BlockNone
		}
	}

	return BlockSlotUnavailable
}

// ExistingAppointment is an appointment as seen by the slot filter.
type ExistingAppointment struct {
	StartTime string
	EndTime   string
	Status    string
}

const statusConfirmed = "CONFIRMED"

// FilterAvailableSlots flips off slots that collide with a confirmed
// appointment. Non-confirmed statuses never block. When
// serviceDuration is zero the check degrades to a one-minute probe at
// the slot start, for callers that only care about point containment.
// Slots already unavailable stay unavailable.
func FilterAvailableSlots(slots []TimeSlot, appointments []ExistingAppointment, serviceDuration int) []TimeSlot {
	for i := range slots {
		if !slots[i].Available {
			continue
		}

		duration := serviceDuration
		if duration <= 0 {
			duration = 1
		}
		slot := SlotRange(slots[i].Time, duration)

		for _, ap := range appointments {
			if ap.Status != statusConfirmed {
				continue
			}
			if RangesOverlap(slot, NewRange(ap.StartTime, ap.EndTime)) {
				slots[i].Available = false
				break
			}
		}
	}

	return slots
}
