// Package logger builds the zerolog loggers used across the service.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0o664

// Build accumulates logger options before Make constructs the logger.
type Build struct {
	writer  io.Writer
	path    string
	level   string
	console bool
}

// New starts a logger build writing to stderr at info level.
func New() *Build {
	return &Build{writer: os.Stderr, level: zerolog.LevelInfoValue}
}

// ToWriter directs output to the given writer.
func (b *Build) ToWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

// ToPath directs output to a file, appending and creating as needed.
func (b *Build) ToPath(path string) *Build {
	b.path = path
	return b
}

// Level sets the minimum level ("debug", "info", "warn", "error").
func (b *Build) Level(level string) *Build {
	b.level = level
	return b
}

// Console switches from JSON lines to human-readable console output.
func (b *Build) Console() *Build {
	b.console = true
	return b
}

// Make constructs the logger.
func (b *Build) Make() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(b.level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", b.level, err)
	}

	writer := b.writer
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return zerolog.Nop(), err
		}
		writer = zerolog.SyncWriter(f)
	}
	if b.console {
		writer = zerolog.ConsoleWriter{Out: writer}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}
