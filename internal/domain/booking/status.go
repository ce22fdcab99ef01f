package booking

import "github.com/fadebook/barber-booking/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ActiveStatuses are the statuses that occupy a slot. Cancelled and
// completed appointments do not block it.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanCancel allows pending -> cancelled and confirmed -> cancelled.
// A second cancel fails the same way, never silently succeeds.
func CanCancel(current Status) error {
	if !current.IsActive() {
		return httperr.ErrState("invalid_state")
	}
	return nil
}

// CanConfirm allows pending -> confirmed only.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrState("invalid_state")
	}
	return nil
}

// CanComplete allows confirmed -> completed only.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrState("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
