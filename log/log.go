package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/xeptore/filesize/config"
	"github.com/xeptore/filesize/constants"
)

// FromConfig builds a logger writing to w. conf must have been validated.
func FromConfig(w io.Writer, conf config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(conf.Level)
	if nil != err {
		panic("invalid logging level: " + conf.Level)
	}

	switch strings.ToLower(conf.Format) {
	case "json":
		return newLogger(w, level)
	case "pretty":
		return newLogger(console(w), level)
	default:
		panic("invalid logging format: " + conf.Format)
	}
}

// NewDefault is the logger used until the configuration is loaded.
func NewDefault(w io.Writer) zerolog.Logger {
	return newLogger(console(w), zerolog.WarnLevel)
}

func console(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:          w,
		TimeFormat:   time.RFC3339,
		TimeLocation: time.UTC,
	}
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.
		New(w).
		Hook(&stackHook{}).
		With().
		Timestamp().
		Str("version", constants.Version).
		Str("compile_time", constants.CompileTime).
		Logger().
		Level(level)
}
