package booking

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock slot time as minutes since midnight.
// Stored and exchanged as "HH:MM" (24h, zero-padded).
type TimeOfDay int

const TimeLayout = "15:04"

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}
