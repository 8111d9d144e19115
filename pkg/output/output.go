// Package output builds the shim's diagnostic logger.
package output

import (
	"io"

	"github.com/jwalton/go-supportscolor"
	"github.com/rs/zerolog"
)

var noColor = !supportscolor.Stderr().SupportsColor

// NewLogger returns a console logger writing to w. Only warnings and above
// are emitted unless debug is set.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(cw).With().Timestamp().Str("name", "doxygen-action").Logger().Level(level)
}
