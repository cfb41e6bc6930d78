package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false, false)

	logger.Infow("Processing file", "path", "a.srt", "mode", "after")

	out := buf.String()
	for _, want := range []string{"INFO", "Processing file", `"path": "a.srt"`, `"mode": "after"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no color codes, got %q", out)
	}
}

func TestNewDebugOnlyWhenVerbose(t *testing.T) {
	var quiet, verbose bytes.Buffer

	New(&quiet, false, false).Debugw("block", "index", 1)
	New(&verbose, true, false).Debugw("block", "index", 1)

	if quiet.Len() != 0 {
		t.Errorf("expected no debug output, got %q", quiet.String())
	}
	if !strings.Contains(verbose.String(), "DEBUG") {
		t.Errorf("expected debug output, got %q", verbose.String())
	}
}

func TestNewColor(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false, true).Warnw("dropped block")

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected color codes, got %q", buf.String())
	}
}
