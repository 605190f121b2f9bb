package log

import (
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 🔧 Options configures the structured event stream
type Options struct {
	Debug   bool
	LogFile string // rotated JSON log written alongside stderr when set

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewZerolog builds the structured logger. Console output is human readable;
// the optional log file receives JSON and is rotated by lumberjack.
// The returned closer flushes the log file and is never nil.
func NewZerolog(stderr io.Writer, opts Options) (zerolog.Logger, io.Closer) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: stderr, TimeFormat: "15:04:05"}
	var closer io.Closer = nopCloser{}

	if opts.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
		}
		w = zerolog.MultiLevelWriter(w, rotator)
		closer = rotator
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
