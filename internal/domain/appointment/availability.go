package appointment

// AvailabilityInput identifies one barber-day-service combination to
// compute the slot grid for.
type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint
	Date         string // YYYY-MM-DD
}

// SlotRequest is one proposed booking to validate against policy.
type SlotRequest struct {
	BarbershopID uint
	BarberID     uint
	Date         string // YYYY-MM-DD
	StartTime    string // HH:MM
	DurationMin  int
}
