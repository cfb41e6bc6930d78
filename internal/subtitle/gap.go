package subtitle

import (
	"fmt"
	"strings"
	"time"
)

// which side of a gap is moved when closing it
type Mode string

const (
	// earlier entry ends where the next one starts
	ModeAfter Mode = "after"
	// later entry starts where the previous one ends
	ModeBefore Mode = "before"
)

const DefaultMode = ModeAfter

// ParseMode accepts "after" or "before" in any case.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeAfter:
		return ModeAfter, nil
	case ModeBefore:
		return ModeBefore, nil
	default:
		return "", fmt.Errorf("invalid gap mode %q: use before or after", value)
	}
}

// CloseGaps makes every adjacent pair of entries touch, walking them in
// slice order. In ModeAfter only EndTime of the earlier entry changes, in
// ModeBefore only StartTime of the later one, so one pass is enough.
// Returns how many pairs were modified.
func CloseGaps(entries []Entry, mode Mode) int {
	changes := 0
	for i := 0; i+1 < len(entries); i++ {
		current := &entries[i]
		next := &entries[i+1]

		if current.EndTime == next.StartTime {
			continue
		}
		if mode == ModeBefore {
			next.StartTime = current.EndTime
		} else {
			current.EndTime = next.StartTime
		}
		changes++
	}
	return changes
}

// summary of the spacing between adjacent entries
type GapStats struct {
	Gaps       int
	Overlaps   int
	LargestGap time.Duration
}

func MeasureGaps(entries []Entry) GapStats {
	var stats GapStats
	for i := 0; i+1 < len(entries); i++ {
		delta := entries[i+1].StartTime - entries[i].EndTime
		switch {
		case delta > 0:
			stats.Gaps++
			if delta > stats.LargestGap {
				stats.LargestGap = delta
			}
		case delta < 0:
			stats.Overlaps++
		}
	}
	return stats
}
