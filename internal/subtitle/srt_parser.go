package subtitle

import (
	"regexp"
	"strings"
)

var (
	lineEndings    = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	blockSeparator = regexp.MustCompile(`\n{2,}`)
	timingRegex    = regexp.MustCompile(
		`^(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})`,
	)
)

// ParseBytes decodes data and parses it as SRT.
func ParseBytes(data []byte) *ParseResult {
	content, enc := Decode(data)
	result := Parse(content)
	result.Encoding = enc
	return result
}

// Parse normalizes CRLF and bare CR line endings to "\n", splits content
// into blank-line separated blocks and turns each well-formed block into an
// Entry. Malformed blocks are recorded in Dropped and otherwise ignored;
// parsing never fails.
func Parse(content string) *ParseResult {
	result := &ParseResult{
		Entries:  make([]Entry, 0),
		Encoding: EncodingUTF8,
	}

	content = strings.TrimSpace(lineEndings.Replace(content))
	if content == "" {
		return result
	}

	blocks := blockSeparator.Split(content, -1)
	result.Blocks = len(blocks)

	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			result.Dropped = append(result.Dropped, DroppedBlock{
				Block:  i,
				Reason: DropTooFewLines,
				Lines:  lines,
			})
			continue
		}

		entry, ok := parseBlock(lines)
		if !ok {
			result.Dropped = append(result.Dropped, DroppedBlock{
				Block:  i,
				Reason: DropBadTiming,
				Lines:  lines,
			})
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	return result
}

func parseBlock(lines []string) (Entry, bool) {
	matches := timingRegex.FindStringSubmatch(lines[1])
	if matches == nil {
		return Entry{}, false
	}

	start, err := ParseTimestamp(matches[1])
	if err != nil {
		return Entry{}, false
	}
	end, err := ParseTimestamp(matches[2])
	if err != nil {
		return Entry{}, false
	}

	return Entry{
		Label:     lines[0],
		StartTime: start,
		EndTime:   end,
		Text:      strings.Join(lines[2:], "\n"),
	}, true
}

