// Package logging configures diagnostic logging for the probe.
//
// Diagnostics always go to stderr: stdout carries exactly one status line
// and is parsed by the monitoring framework.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable diagnostics to stderr.
// Without verbose only warnings and errors are emitted.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
