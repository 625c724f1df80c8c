package observability

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the console logger used for --verbose command tracing.
// It writes to the given sink (stderr in practice, so delegated tool output
// keeps stdout to itself) and stays silent below debug unless verbose.
func NewLogger(out io.Writer, app string, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Str("app", app).Logger()
}
