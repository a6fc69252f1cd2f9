// Package logging builds the zerolog logger used by the command line tool.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Formats accepted by [Options.Format].
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options describes where and how to log.
type Options struct {
	Level  string // zerolog level name; empty means info
	Format string // console or json; empty means console
	Out    io.Writer

	// File, when set, receives JSON logs through a size-rotated writer.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New returns a logger for opts and a function that releases the log file.
func New(opts Options) (zerolog.Logger, func() error, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), nil, errors.Wrapf(err, "logging: level %q", opts.Level)
		}
		level = lvl
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var primary io.Writer
	switch strings.ToLower(opts.Format) {
	case "", FormatConsole:
		primary = zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: "15:04:05"}
	case FormatJSON:
		primary = out
	default:
		return zerolog.Nop(), nil, errors.Errorf("logging: unsupported format %q (expected console|json)", opts.Format)
	}

	cleanup := func() error { return nil }
	writer := primary
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
		}
		writer = zerolog.MultiLevelWriter(primary, rotator)
		cleanup = rotator.Close
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logger, cleanup, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
