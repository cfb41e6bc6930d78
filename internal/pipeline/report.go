package pipeline

import (
	"github.com/mgpai22/srtgap/internal/subtitle"
)

// outcome of one file
type Status string

const (
	StatusProcessed Status = "processed"
	StatusUnchanged Status = "unchanged"
	StatusDryRun    Status = "dry-run"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// FileReport describes what happened to a single file.
type FileReport struct {
	Path     string
	Status   Status
	Encoding subtitle.Encoding
	Blocks   int
	Entries  int
	Dropped  []subtitle.DroppedBlock
	Changes  int
	Err      error
}

// BatchReport lists file reports in processing order.
type BatchReport struct {
	Files []FileReport
}

func (b BatchReport) Count(status Status) int {
	n := 0
	for _, f := range b.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Failed reports whether any file could not be read, locked or written.
func (b BatchReport) Failed() bool {
	return b.Count(StatusFailed) > 0
}

func (b BatchReport) TotalChanges() int {
	total := 0
	for _, f := range b.Files {
		total += f.Changes
	}
	return total
}
