// Package logger provides the shared zerolog logger for galois.
//
// By default it writes human-readable console output to stdout, and it
// silences itself inside `go test` binaries unless the debug build tag is
// set. Applications embedding galois can swap, redirect or disable it
// process-wide.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/consensys/galois/debug"
)

var logger zerolog.Logger

func init() {
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(writer).With().Timestamp().Logger()

	// keep test output clean unless explicitly debugging
	if !debug.Debug && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return logger
}

// With returns a sublogger tagged with the given component name.
func With(component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// Set replaces the global logger.
func Set(l zerolog.Logger) {
	logger = l
}

// SetOutput redirects the global logger to w.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Disable turns logging off.
func Disable() {
	logger = zerolog.Nop()
}
