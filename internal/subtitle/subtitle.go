package subtitle

import (
	"time"
)

// represents single subtitle entry
type Entry struct {
	// original index line, kept verbatim
	Label     string
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// why a block did not become an entry
type DropReason string

const (
	DropTooFewLines DropReason = "fewer than 3 lines"
	DropBadTiming   DropReason = "timing line does not match"
)

// block that was skipped during parsing
type DroppedBlock struct {
	Block  int
	Reason DropReason
	Lines  []string
}

// outcome of parsing one document; Entries keep file order
type ParseResult struct {
	Entries  []Entry
	Blocks   int
	Dropped  []DroppedBlock
	Encoding Encoding
}
