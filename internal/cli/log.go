package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger creates a logger with timestamp formatting, matching the format
// used for every run of the linebreak command.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx, tagged with a fresh correlation ID so that
// log lines from a single invocation (including any --dot render step) can
// be told apart from a concurrent one in aggregated log output.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	l = l.With("run", uuid.NewString())
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached by withLogger, or the
// package default if none was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
