package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"salondesk-backend/models"
)

// Slot times live in the store as local HH:MM:SS strings. Internally the
// core works in minutes since midnight, which makes the half-open
// interval tests trivial.

// ParseClock converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
// "24:00" is accepted as end-of-day; anything past it is rejected.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	if len(parts) == 3 {
		s, err := strconv.Atoi(parts[2])
		if err != nil || s < 0 || s > 59 {
			return 0, fmt.Errorf("invalid clock value %q", clock)
		}
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight to "HH:MM:SS".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// FormatClockShort converts minutes since midnight to "HH:MM".
func FormatClockShort(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// minuteOfDay extracts the minutes-since-midnight component of t.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// slotDate formats t as the ledger's calendar-day key.
func slotDate(t time.Time) string {
	return t.Format(models.SlotDateLayout)
}
