// Package logging builds the console logger used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a sugared zap logger with key/value helpers (Infow, Warnw, ...).
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger writes to stderr at info level, or debug when verbose is set.
// Level names are colored only when stderr is a terminal.
func NewLogger(verbose bool) *Logger {
	return New(os.Stderr, verbose, isTerminal(os.Stderr))
}

// New builds a Logger writing to w. Every entry is written through
// immediately so progress shows up during long batches.
func New(w io.Writer, verbose bool, color bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	if color {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
