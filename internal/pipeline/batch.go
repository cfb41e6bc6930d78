package pipeline

import (
	"path/filepath"
)

// ExpandPatterns resolves glob patterns to paths, keeping the order in
// which they were matched and dropping duplicates. Patterns that match
// nothing are reported and otherwise ignored.
func (p *Processor) ExpandPatterns(patterns []string) []string {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			p.logger.Warnw("Invalid pattern", "pattern", pattern, "error", err)
			continue
		}
		if len(matches) == 0 {
			p.logger.Warnw("No files found matching pattern", "pattern", pattern)
			continue
		}

		p.logger.Debugw("Expanded pattern",
			"pattern", pattern,
			"files", len(matches),
		)
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			paths = append(paths, match)
		}
	}

	return paths
}

// Run expands patterns and processes every resolved file in order. A
// failing file is recorded and the batch moves on.
func (p *Processor) Run(patterns []string) BatchReport {
	var batch BatchReport

	paths := p.ExpandPatterns(patterns)
	if len(paths) == 0 {
		p.logger.Infow("No files to process")
		return batch
	}

	p.logger.Infow("Files to process",
		"count", len(paths),
		"mode", p.opts.Mode,
		"dry_run", p.opts.DryRun,
	)

	for _, path := range paths {
		report, _ := p.ProcessFile(path)
		batch.Files = append(batch.Files, report)
	}

	p.logger.Infow("Batch complete",
		"files", len(batch.Files),
		"processed", batch.Count(StatusProcessed),
		"unchanged", batch.Count(StatusUnchanged),
		"skipped", batch.Count(StatusSkipped),
		"failed", batch.Count(StatusFailed),
		"changes", batch.TotalChanges(),
	)
	return batch
}
