package subtitle

import (
	"fmt"
	"strings"
)

// Format renders entries as SRT with "\n" line breaks and a single blank
// line between entries.
func Format(entries []Entry) string {
	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(entry.Label)
		sb.WriteString("\n")

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(entry.StartTime),
			FormatTimestamp(entry.EndTime)))

		sb.WriteString(entry.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
