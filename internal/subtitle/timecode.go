package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp converts an SRT timestamp (HH:MM:SS,mmm) to a duration.
// Clock fields are not range checked, so 00:75:00,000 is 75 minutes.
func ParseTimestamp(value string) (time.Duration, error) {
	clock, millis, ok := strings.Cut(value, ",")
	if !ok {
		return 0, fmt.Errorf("invalid timestamp %q: missing milliseconds", value)
	}
	hms := strings.Split(clock, ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q: expected HH:MM:SS", value)
	}

	fields := [4]string{hms[0], hms[1], hms[2], millis}
	var parts [4]int64
	for i, field := range fields {
		n, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q: %w", value, err)
		}
		parts[i] = int64(n)
	}

	return time.Duration(parts[0])*time.Hour +
		time.Duration(parts[1])*time.Minute +
		time.Duration(parts[2])*time.Second +
		time.Duration(parts[3])*time.Millisecond, nil
}

// FormatTimestamp renders d as HH:MM:SS,mmm. Hours past 99 widen the
// field instead of wrapping; negative durations render as zero.
func FormatTimestamp(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	hours := ms / 3600000
	ms %= 3600000
	minutes := ms / 60000
	ms %= 60000
	seconds := ms / 1000
	ms %= 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, ms)
}
