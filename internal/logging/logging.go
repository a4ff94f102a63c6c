// Package logging builds the process-wide slog.Logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/arisa-app/castdir/internal/config"
)

// New returns a JSON logger writing to stdout and, when cfg.File is set, to a
// size-rotated file as well. The returned closer releases the file; it is a
// no-op when no file is configured.
func New(cfg config.Log) (*slog.Logger, io.Closer) {
	return NewTo(os.Stdout, cfg)
}

// NewTo is New with an explicit console writer.
func NewTo(console io.Writer, cfg config.Log) (*slog.Logger, io.Closer) {
	w := console
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		w = io.MultiWriter(console, file)
		closer = file
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})), closer
}

// ParseLevel maps debug/info/warn/error to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
