// Package obslog sets up the structured operational logger shared by the
// server and client binaries. It is separate from internal/report, which
// renders the exact wire-trace format; this package is for everything else
// — connection lifecycle, admission decisions, timeouts, fatal startup
// errors.
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger writing to w (os.Stderr in production, a
// buffer in tests) with the given minimum level. verbose lowers the level
// to debug regardless of levelName, matching the CLI's -v flag.
func New(w io.Writer, levelName string, verbose bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
