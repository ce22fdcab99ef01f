package booking

// SlotIntervalMinutes is the fixed booking grid step. Service duration
// does not change it.
const SlotIntervalMinutes = 30

// MaxAdvanceDays is how far ahead a booking may be placed, inclusive.
const MaxAdvanceDays = 30

// GenerateSlots returns every slot t with open <= t < close, stepping
// by interval minutes, ascending. close <= open yields an empty grid,
// not an error.
func GenerateSlots(open, close TimeOfDay, interval int) []TimeOfDay {
	if interval <= 0 {
		interval = SlotIntervalMinutes
	}

	slots := make([]TimeOfDay, 0)
	for cur := open; cur.Before(close); cur = cur.AddMinutes(interval) {
		slots = append(slots, cur)
	}

	return slots
}
