package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the CLI logger. Normal runs only surface warnings as JSON on
// out; debug runs switch to a human readable console writer at debug level.
func Setup(out io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	if debug {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, FormatTimestamp: func(i any) string {
			return time.Now().Format(time.RFC3339)
		}}).Level(level).With().Caller().Logger()
	}

	return logger
}
