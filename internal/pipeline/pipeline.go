// Package pipeline runs the read, parse, close gaps, write cycle over
// subtitle files.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mgpai22/srtgap/internal/subtitle"
)

// Logger receives diagnostics. *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// number of leading and trailing blocks previewed at debug level
const previewBlocks = 3

type Options struct {
	Mode   subtitle.Mode
	DryRun bool
}

// Processor closes subtitle gaps in files, one file at a time.
type Processor struct {
	opts   Options
	logger Logger
}

func NewProcessor(opts Options, logger Logger) *Processor {
	if opts.Mode == "" {
		opts.Mode = subtitle.DefaultMode
	}
	return &Processor{
		opts:   opts,
		logger: logger,
	}
}

// ProcessFile rewrites path in place with its gaps closed. Paths that are
// not regular files are skipped; I/O problems fail only this file. The
// returned error mirrors report.Err.
func (p *Processor) ProcessFile(path string) (FileReport, error) {
	report := FileReport{Path: path}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		p.logger.Warnw("Skipping path that is not a file", "path", path)
		report.Status = StatusSkipped
		return report, nil
	}

	p.logger.Infow("Processing file",
		"path", path,
		"mode", p.opts.Mode,
	)

	lock, err := lockFile(path)
	if err != nil {
		return p.fail(report, err)
	}
	defer func() {
		if err := lock.release(); err != nil {
			p.logger.Warnw("Failed to release lock", "path", path, "error", err)
		}
	}()
	p.logger.Debugw("Acquired lock", "path", path, "lock", lock.lock.Path())

	data, err := os.ReadFile(path)
	if err != nil {
		return p.fail(report, fmt.Errorf("failed to read file: %w", err))
	}

	result := subtitle.ParseBytes(data)
	report.Encoding = result.Encoding
	report.Blocks = result.Blocks
	report.Entries = len(result.Entries)
	report.Dropped = result.Dropped

	if result.Encoding != subtitle.EncodingUTF8 {
		p.logger.Infow("UTF-8 decoding failed, decoded with fallback",
			"path", path,
			"encoding", result.Encoding,
		)
	}
	p.logBlocks(path, data, result)

	stats := subtitle.MeasureGaps(result.Entries)
	p.logger.Debugw("Measured gaps",
		"path", path,
		"gaps", stats.Gaps,
		"overlaps", stats.Overlaps,
		"largest_gap", stats.LargestGap,
	)

	report.Changes = subtitle.CloseGaps(result.Entries, p.opts.Mode)
	p.logger.Infow("Closed gaps",
		"path", path,
		"changes", report.Changes,
	)

	output := subtitle.Format(result.Entries)

	switch {
	case p.opts.DryRun:
		report.Status = StatusDryRun
		p.logger.Infow("Dry run, file not written", "path", path)
		return report, nil
	case output == string(data):
		report.Status = StatusUnchanged
		p.logger.Infow("File already gapless", "path", path)
		return report, nil
	}

	if err := os.WriteFile(path, []byte(output), info.Mode().Perm()); err != nil {
		return p.fail(report, fmt.Errorf("failed to write file: %w", err))
	}

	report.Status = StatusProcessed
	p.logger.Infow("Successfully processed file",
		"path", path,
		"entries", report.Entries,
		"changes", report.Changes,
	)
	return report, nil
}

func (p *Processor) fail(report FileReport, err error) (FileReport, error) {
	report.Status = StatusFailed
	report.Err = err
	if errors.Is(err, ErrLocked) {
		p.logger.Errorw("File is busy", "path", report.Path, "error", err)
	} else {
		p.logger.Errorw("Failed to process file", "path", report.Path, "error", err)
	}
	return report, err
}

func (p *Processor) logBlocks(path string, data []byte, result *subtitle.ParseResult) {
	p.logger.Infow("Split content into blocks",
		"path", path,
		"bytes", len(data),
		"blocks", result.Blocks,
	)

	for _, dropped := range result.Dropped {
		switch dropped.Reason {
		case subtitle.DropBadTiming:
			p.logger.Warnw("Failed to parse timing, dropping block",
				"path", path,
				"block", dropped.Block,
				"timing", dropped.Lines[1],
			)
		default:
			p.logger.Warnw("Block has fewer than 3 lines, dropping it",
				"path", path,
				"block", dropped.Block,
				"lines", dropped.Lines,
			)
		}
	}

	for i, entry := range result.Entries {
		if i < previewBlocks || i >= len(result.Entries)-previewBlocks {
			p.logger.Debugw("Entry",
				"path", path,
				"label", entry.Label,
				"start", subtitle.FormatTimestamp(entry.StartTime),
				"end", subtitle.FormatTimestamp(entry.EndTime),
				"text", preview(entry.Text),
			)
		}
	}

	p.logger.Infow("Found valid subtitle entries",
		"path", path,
		"entries", len(result.Entries),
		"dropped", len(result.Dropped),
	)
}

func preview(text string) string {
	text = strings.ReplaceAll(text, "\n", " | ")
	if runes := []rune(text); len(runes) > 100 {
		return string(runes[:100]) + "..."
	}
	return text
}
