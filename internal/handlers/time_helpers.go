package handlers

import "time"

const dateLayout = "2006-01-02"

// Calendar dates travel as YYYY-MM-DD and live as midnight UTC; the
// system runs wall-clock only, no timezone handling.
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, dateStr, time.UTC)
}
