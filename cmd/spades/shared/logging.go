package shared

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// SetupLogger builds the CLI's zerolog logger: pretty console output on
// stderr, or structured JSON when the --json flag asks for it.
func SetupLogger(debug, json bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var out io.Writer = os.Stderr
	if json {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	} else {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
