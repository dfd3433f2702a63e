package timeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a clock string is not "HH:MM".
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

const minutesPerDay = 24 * 60

// TimeToMinutes parses a "HH:MM" clock string into minutes since midnight.
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	mins, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	if hours < 0 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}

	return hours*60 + mins, nil
}

// MinutesToTime formats minutes since midnight as a "HH:MM" clock string.
// Values of 1440 or more wrap around to the next day's clock time; there
// is no day-rollover tracking, so callers must keep a packed schedule
// within a single day.
func MinutesToTime(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Duration returns the number of minutes between two clock strings.
// The result is negative when end precedes start; callers must treat a
// negative duration as invalid input rather than a usable interval.
func Duration(start, end string) (int, error) {
	s, err := TimeToMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := TimeToMinutes(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}
