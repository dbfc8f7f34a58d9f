package appointment

import "github.com/studio-navalha/agenda-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusConfirmed is the only status that occupies a slot.
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

// ===============================
// Transitions
// ===============================

// CanCancel reports whether an appointment may still be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete reports whether an appointment may be marked done.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkNoShow reports whether the client may be marked a no-show.
func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
