package gamma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TimeOfDay reduces a wall-clock time to a fraction of the 24-hour cycle
// in [0,1): exactly 0 at midnight, just under 1 the instant before the
// next midnight. The fraction comes from the civil clock reading, not
// elapsed time since midnight, so DST days (23 or 25 hours long) still
// map every reading into [0,1). Sub-second precision is kept so repeated
// evaluations are strictly monotonic within a day.
func TimeOfDay(t time.Time) float64 {
	seconds := float64(t.Hour()*3600+t.Minute()*60+t.Second()) +
		float64(t.Nanosecond())/1e9
	return seconds / secondsPerDay
}

// ParseClock parses a "HH:MM" clock string into a fraction of the 24-hour
// cycle in [0,1). This is the format used by config files and CLI flags
// for phase boundaries.
func ParseClock(s string) (float64, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock value %q: hour must be 0-23 and minute 0-59", s)
	}
	return (float64(hour)*60 + float64(minute)) * 60 / secondsPerDay, nil
}

// FormatClock renders a day fraction back into "HH:MM", rounding to the
// nearest minute.
func FormatClock(frac float64) string {
	totalMinutes := int(math.Round(frac*24*60)) % (24 * 60)
	if totalMinutes < 0 {
		totalMinutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
