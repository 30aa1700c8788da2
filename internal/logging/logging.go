// Package logging builds the zerolog logger. The picker owns stdout while it
// runs, so logs only go to a file or, in debug mode, to stderr.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level string
	File  string
	Debug bool
}

// Logger wraps a zerolog.Logger together with the file it writes to
type Logger struct {
	zerolog.Logger
	file *os.File
}

// New creates a logger from cfg. With neither a file nor debug enabled it
// discards everything.
func New(cfg Config) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}
	if cfg.Debug {
		lvl = zerolog.DebugLevel
	}

	var writers []io.Writer
	if cfg.Debug {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	l := &Logger{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, err
		}
		l.file = f
		writers = append(writers, f)
	}

	if len(writers) == 0 {
		l.Logger = zerolog.Nop()
		return l, nil
	}
	l.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return l, nil
}

// Quiet drops console output while the terminal is taken over, keeping the
// file writer if there is one
func (l *Logger) Quiet() zerolog.Logger {
	if l.file == nil {
		return zerolog.Nop()
	}
	return zerolog.New(l.file).
		Level(l.GetLevel()).
		With().
		Timestamp().
		Logger()
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.Logger = zerolog.Nop()
	return err
}
