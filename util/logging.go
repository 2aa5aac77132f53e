package util

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	Logger zerolog.Logger
	// LogOutput is where LogInit sends the console log. The report itself
	// goes to stdout, so this stays on stderr unless a test swaps it.
	LogOutput io.Writer = os.Stderr
)

func ParseLevel(inlevel string) zerolog.Level {
	switch strings.ToLower(inlevel) {
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func LogInit(inlevel string) {
	level := ParseLevel(inlevel)
	Logger = zerolog.New(
		zerolog.ConsoleWriter{Out: LogOutput, TimeFormat: time.RFC3339},
	).Level(level).With().Timestamp().Caller().Logger()

	Logger.Debug().Msgf("logging initialized at level %v", level)
}
