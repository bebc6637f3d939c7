// Package logging builds the zerolog loggers used by the command line
// tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the configured log level when set to a
// recognised value.
const EnvLogLevel = "COBS_ORACLE_LOG_LEVEL"

// New returns a console logger writing to out, tagged with app.
func New(app, level string, out io.Writer) zerolog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok {
		lvl = zerolog.InfoLevel
	}
	if override, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		lvl = override
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	if f, ok := out.(*os.File); ok {
		output.NoColor = !isTerminal(f)
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", app).Logger()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// ParseLevel maps a level name to a zerolog level.  The second result is
// false for names it doesn't know, including the empty string.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
