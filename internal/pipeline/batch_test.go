package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mgpai22/srtgap/internal/subtitle"
)

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.srt", gappedSRT)
	b := writeFile(t, dir, "b.srt", gappedSRT)
	writeFile(t, dir, "notes.txt", "x")

	p, logs := newTestProcessor(t, Options{})
	paths := p.ExpandPatterns([]string{
		filepath.Join(dir, "*.srt"),
		a,
		filepath.Join(dir, "*.missing"),
		"[",
	})

	if len(paths) != 2 || paths[0] != a || paths[1] != b {
		t.Errorf("unexpected paths: %v", paths)
	}
	if logs.FilterMessage("No files found matching pattern").Len() != 1 {
		t.Error("expected no-match diagnostic")
	}
	if logs.FilterMessage("Invalid pattern").Len() != 1 {
		t.Error("expected invalid pattern diagnostic")
	}
}

func TestRunNoFiles(t *testing.T) {
	p, logs := newTestProcessor(t, Options{})

	batch := p.Run([]string{filepath.Join(t.TempDir(), "*.srt")})

	if len(batch.Files) != 0 || batch.Failed() {
		t.Errorf("unexpected batch: %+v", batch)
	}
	if logs.FilterMessage("No files to process").Len() != 1 {
		t.Error("expected no files diagnostic")
	}
}

func TestRunContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "1.srt", gappedSRT)
	busy := writeFile(t, dir, "2.srt", gappedSRT)
	last := writeFile(t, dir, "3.srt", gappedSRT)

	held, err := lockFile(busy)
	if err != nil {
		t.Fatalf("lockFile error: %v", err)
	}
	defer held.release()

	p, _ := newTestProcessor(t, Options{Mode: subtitle.ModeBefore})
	batch := p.Run([]string{filepath.Join(dir, "*.srt")})

	if len(batch.Files) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(batch.Files))
	}
	if batch.Files[1].Status != StatusFailed || !errors.Is(batch.Files[1].Err, ErrLocked) {
		t.Errorf("expected second file to fail with ErrLocked, got %+v", batch.Files[1])
	}
	if readFile(t, busy) != gappedSRT {
		t.Error("locked file was modified")
	}
	for _, path := range []string{first, last} {
		if readFile(t, path) == gappedSRT {
			t.Errorf("%s was not processed", path)
		}
	}
	if !batch.Failed() || batch.Count(StatusProcessed) != 2 || batch.TotalChanges() != 2 {
		t.Errorf("unexpected batch totals: %+v", batch)
	}
}

func TestRunContinuesPastUnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	dir := t.TempDir()
	unreadable := writeFile(t, dir, "1.srt", gappedSRT)
	last := writeFile(t, dir, "2.srt", gappedSRT)
	if err := os.Chmod(unreadable, 0); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(unreadable, 0644)

	p, _ := newTestProcessor(t, Options{})
	batch := p.Run([]string{filepath.Join(dir, "*.srt")})

	if len(batch.Files) != 2 || batch.Files[0].Status != StatusFailed {
		t.Fatalf("expected first file to fail, got %+v", batch.Files)
	}
	if readFile(t, last) == gappedSRT {
		t.Error("file after the failure was not processed")
	}
}

func TestRunSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub.srt"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, dir, "a.srt", gappedSRT)

	p, _ := newTestProcessor(t, Options{})
	batch := p.Run([]string{filepath.Join(dir, "*.srt")})

	if batch.Count(StatusSkipped) != 1 || batch.Count(StatusProcessed) != 1 {
		t.Errorf("unexpected batch: %+v", batch)
	}
	if batch.Failed() {
		t.Error("skipped paths should not fail the batch")
	}
}
